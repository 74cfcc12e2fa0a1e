package todo

// Page is one slice of the todo list, ordered by CreatedAt descending with
// ties broken by ID descending. NextCursor carries the ID of the last item
// when more items remain beyond the page, and is nil on the final page.
//
// The cursor is deliberately just an item ID: listing resumes strictly
// after the identified todo, which keeps traversal deterministic as long
// as no concurrent mutation reorders the set.
type Page struct {
	Items      []Todo
	NextCursor *int64
}

// Clone returns a structural copy of the page. Items share no backing
// array with the original and the cursor pointer is duplicated, so the
// copy can be retained and restored independently of later mutations.
func (p Page) Clone() Page {
	out := Page{}
	if p.Items != nil {
		out.Items = make([]Todo, len(p.Items))
		copy(out.Items, p.Items)
	}
	if p.NextCursor != nil {
		c := *p.NextCursor
		out.NextCursor = &c
	}
	return out
}

// ClonePages deep-copies a slice of pages. Used by the client cache to
// take snapshots that survive optimistic mutation of the original.
func ClonePages(pages []Page) []Page {
	if pages == nil {
		return nil
	}
	out := make([]Page, len(pages))
	for i := range pages {
		out[i] = pages[i].Clone()
	}
	return out
}
