package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yjkwon/todo-service/internal/domain/todo"
)

var listAll bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List todos, newest first",
	RunE: func(cmd *cobra.Command, _ []string) error {
		coord := newCoordinator()
		ctx := cmd.Context()

		if err := coord.FetchFirstPage(ctx); err != nil {
			return err
		}
		if listAll {
			for {
				more, err := coord.FetchNextPage(ctx)
				if err != nil {
					return err
				}
				if !more {
					break
				}
			}
		}

		pages := coord.Pages()
		for _, page := range pages {
			for _, t := range page.Items {
				printTodo(&t)
			}
		}
		if !listAll && len(pages) > 0 && pages[len(pages)-1].NextCursor != nil {
			fmt.Printf("... more todos after id %d (use --all)\n", *pages[len(pages)-1].NextCursor)
		}
		return nil
	},
}

var addCompleted bool

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a todo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		coord := newCoordinator()

		created, err := coord.Add(cmd.Context(), args[0], addCompleted)
		if err != nil {
			return err
		}
		printTodo(created)
		return nil
	},
}

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a single todo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}

		coord := newCoordinator()
		t, err := coord.Get(cmd.Context(), id)
		if err != nil {
			return err
		}
		printTodo(t)
		return nil
	},
}

var toggleDone bool

var toggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Set a todo's completion state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}

		coord := newCoordinator()
		// Prime the cache so the optimistic path has pages to mutate.
		if err := coord.FetchFirstPage(cmd.Context()); err != nil {
			return err
		}
		if err := coord.Toggle(cmd.Context(), id, toggleDone); err != nil {
			return err
		}
		fmt.Printf("todo %d: completed=%t\n", id, toggleDone)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a todo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}

		coord := newCoordinator()
		if err := coord.Delete(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("todo %d deleted\n", id)
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listAll, "all", false, "follow cursors until the end of the list")
	addCmd.Flags().BoolVar(&addCompleted, "completed", false, "create the todo already completed")
	toggleCmd.Flags().BoolVar(&toggleDone, "done", true, "target completion state")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(deleteCmd)
}

func parseIDArg(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

func printTodo(t *todo.Todo) {
	mark := " "
	if t.Completed {
		mark = "x"
	}
	fmt.Printf("[%s] %d  %s\n", mark, t.ID, t.Title)
}
