package metadatarepo

// Optional book facts from the API Ninjas books endpoint, used to backfill
// catalog entries saved without a description or year.

type BookFacts struct {
	Title  string
	Author string
	Year   int16
}

type Repo interface {
	// Lookup returns nil without error when nothing matched.
	Lookup(title string) (*BookFacts, error)
}
