package model

// DeleteResult reports the outcome of a delete operation. A rejected CSRF
// token yields Deleted=false with no messages: the caller sees the same
// response shape as a successful delete, distinguishable only by the absent
// success message.
type DeleteResult struct {
	Deleted  bool     `json:"-"`
	Messages []string `json:"messages"`
}

// NoOpDelete is the silent outcome used when a CSRF token does not match.
func NoOpDelete() *DeleteResult {
	return &DeleteResult{Deleted: false, Messages: []string{}}
}

// CompletedDelete is the outcome of an applied delete with its flash message.
func CompletedDelete(flash string) *DeleteResult {
	return &DeleteResult{Deleted: true, Messages: []string{flash}}
}
