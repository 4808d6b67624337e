package domain

type LensSummary struct {
	// Alias is the identifier the review service accepts wherever a lens alias is expected.
	Alias   string
	Name    string
	Version string
}

type LensImport struct {
	// Alias is empty when the lens is imported for the first time.
	Alias string
	JSON  string
}
