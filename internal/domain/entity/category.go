// Package entity contains the core business objects of the project.
package entity

import "strings"

// Family is the closed set of product families that drive customization and
// pricing behavior. Product categories themselves stay open strings; every
// category resolves to exactly one family, with FamilyUnknown as the
// explicit fallback so an unmatched tag can never silently price as some
// other family.
type Family string

const (
	// FamilyBurger covers burgers and tortas: ingredient add/remove, snack
	// side pieces and the bathed-patty option.
	FamilyBurger Family = "burger"
	// FamilyWings covers wings, boneless and strips: priced by extra pieces.
	FamilyWings Family = "wings"
	// FamilyPasta covers pasta with a protein choice: priced by extra pieces.
	FamilyPasta Family = "pasta"
	// FamilyBox covers the family box: extra pieces plus three snack kinds.
	FamilyBox Family = "family_box"
	// FamilyDrink covers drinks and frappes: no customization pricing.
	FamilyDrink Family = "drink"
	// FamilySimple covers plain items sold as-is.
	FamilySimple Family = "simple"
	// FamilyUnknown is the fallback for category tags that match nothing.
	FamilyUnknown Family = "unknown"
)

// categoryPatterns maps lowercase substrings of category tags to families.
// Order matters: the first match wins, so the more specific tags come first.
var categoryPatterns = []struct {
	substr string
	family Family
}{
	{"family", FamilyBox},
	{"familiar", FamilyBox},
	{"box", FamilyBox},
	{"burger", FamilyBurger},
	{"hamburguesa", FamilyBurger},
	{"torta", FamilyBurger},
	{"wing", FamilyWings},
	{"alita", FamilyWings},
	{"boneless", FamilyWings},
	{"strip", FamilyWings},
	{"tira", FamilyWings},
	{"pasta", FamilyPasta},
	{"spaghetti", FamilyPasta},
	{"drink", FamilyDrink},
	{"bebida", FamilyDrink},
	{"frappe", FamilyDrink},
	{"malteada", FamilyDrink},
	{"refresco", FamilyDrink},
	{"snack", FamilySimple},
	{"papas", FamilySimple},
	{"simple", FamilySimple},
}

// ResolveFamily maps an open category tag to its closed family.
func ResolveFamily(category string) Family {
	tag := strings.ToLower(strings.TrimSpace(category))
	if tag == "" {
		return FamilyUnknown
	}

	for _, p := range categoryPatterns {
		if strings.Contains(tag, p.substr) {
			return p.family
		}
	}

	return FamilyUnknown
}

// SellsSaucePots reports whether items of this family charge for extra
// sauce pots. Drinks, plain items and unresolved categories do not.
func (f Family) SellsSaucePots() bool {
	switch f {
	case FamilyBurger, FamilyWings, FamilyPasta, FamilyBox:
		return true
	default:
		return false
	}
}
