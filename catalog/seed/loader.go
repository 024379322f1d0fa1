package seed

import (
	"fmt"
	"os"

	"github.com/marcelsud/bookstore-catalog/catalog"
	"gopkg.in/yaml.v3"
)

/* Loader reads a YAML seed file of books used to populate a fresh catalog.
 * Entries are validated up front so a bad file fails before any insert.
 */

// File represents the structure of the seed YAML file
type File struct {
	Books []BookEntry `yaml:"books"`
}

// BookEntry represents a single book in the YAML file
type BookEntry struct {
	Title string  `yaml:"title"`
	Desc  string  `yaml:"desc"`
	Price float64 `yaml:"price"`
	Cover string  `yaml:"cover"` // optional: default cover substituted when empty
}

// Loader holds the loaded books
type Loader struct {
	books []catalog.Book
}

// NewLoader creates a new seed loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses the seed YAML file
func (l *Loader) Load(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("reading seed file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing seed YAML: %w", err)
	}

	books := make([]catalog.Book, 0, len(file.Books))
	for i, entry := range file.Books {
		cover := entry.Cover
		if cover == "" {
			cover = catalog.DefaultCover
		}

		b := catalog.Book{
			Title: entry.Title,
			Desc:  entry.Desc,
			Price: entry.Price,
			Cover: cover,
		}

		if err := b.Validate(); err != nil {
			return fmt.Errorf("validating seed entry %d: %w", i+1, err)
		}

		books = append(books, b)
	}

	l.books = books
	return nil
}

// List returns all loaded books
func (l *Loader) List() []catalog.Book {
	return l.books
}
