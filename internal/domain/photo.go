package domain

// Photo describes a static image asset together with its caption
type Photo struct {
	Path    string
	Caption string
}
