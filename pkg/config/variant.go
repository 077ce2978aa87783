package config

// SectionTemplates is the required section mapping languages to template directories.
const SectionTemplates = "templates"

// Variant selects one of the two command phases.
type Variant int

const (
	// Before commands run prior to copying the template.
	Before Variant = iota
	// After commands run inside the new project once the copy is done.
	After
)

var variantSections = map[Variant]string{
	Before: "commands-before",
	After:  "commands-after",
}

var variantNames = map[Variant]string{
	Before: "before",
	After:  "after",
}

// Variants returns all variants in execution order.
func Variants() []Variant {
	return []Variant{Before, After}
}

// Section returns the config section holding the variant's command lists.
func (v Variant) Section() string {
	return variantSections[v]
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return "unknown"
}
