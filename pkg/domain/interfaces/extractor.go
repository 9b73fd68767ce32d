package interfaces

// DescriptionExtractor extracts a human-readable description from script text
type DescriptionExtractor interface {
	Extract(content string) string
}
