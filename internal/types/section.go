package types

// Section is one titled block of text handed to a renderer
type Section struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// MenuResponse is returned by the menu endpoints
type MenuResponse struct {
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
}
