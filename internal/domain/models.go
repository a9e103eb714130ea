package domain

// Page is one carousel page loaded from disk
type Page struct {
	Name string // file name without extension
	Path string
	Body string
}
