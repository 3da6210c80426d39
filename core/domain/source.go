// ABOUTME: News source catalogue models
// ABOUTME: Describes outlets that can be used to filter news searches and headlines

package domain

// NewsSource is an outlet known to the news API
type NewsSource struct {
	ID          string
	Name        string
	Description string
	URL         string
	Category    string
	Language    string
	Country     string
}

// SourcesOptions filters the source catalogue
type SourcesOptions struct {
	Category string
	Language string
	Country  string
}
