// Package pricing derives the final per-unit price and the kitchen-facing
// description for a customized product. Quote is a pure function of the
// product and the selection state; callers recompute it synchronously on
// every selection change.
package pricing

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"fogon/internal/domain/entity"
)

// BathedSurcharge is the flat charge for bathing the patty in a sauce
// flavor, burger family only.
const BathedSurcharge = 5

// Validation failures surfaced to the customer before confirm.
var (
	// ErrFlavorRequired is returned when the product offers flavors and none
	// was chosen.
	ErrFlavorRequired = errors.New("flavor selection required")
	// ErrSplitFlavorsIncomplete is returned when split-flavor mode is on and
	// either half is missing.
	ErrSplitFlavorsIncomplete = errors.New("both flavor halves required")
	// ErrBathedSauceRequired is returned when the bathed option is on
	// without a chosen sauce.
	ErrBathedSauceRequired = errors.New("bathed option requires a sauce")
)

// Selection is the variant-specific customizer state. Zero value means no
// customization: Quote returns the base price and an empty description.
type Selection struct {
	RemovedIngredients []string       `json:"removed_ingredients,omitempty"`
	AddedIngredients   []string       `json:"added_ingredients,omitempty"`
	ExtraPieces        int            `json:"extra_pieces,omitempty"`
	ExtraSaucePots     int            `json:"extra_sauce_pots,omitempty"`
	ExtraSnacks        map[string]int `json:"extra_snacks,omitempty"`
	Flavor             string         `json:"flavor,omitempty"`
	SplitFlavor        bool           `json:"split_flavor,omitempty"`
	HalfFlavors        []string       `json:"half_flavors,omitempty"`
	Bathed             bool           `json:"bathed,omitempty"`
	Extras             []string       `json:"extras,omitempty"`
}

// Quote is the priced outcome of a selection.
type Quote struct {
	UnitPrice   float64
	Description string
}

// Compute prices the selection against the product. Missing product price
// fields contribute zero, negative counts are clamped to zero, and the
// description contains only the clauses the selection actually produced.
func Compute(product *entity.Product, sel Selection) (Quote, error) {
	if err := validate(product, sel); err != nil {
		return Quote{}, err
	}

	family := entity.ResolveFamily(product.Category)
	price := product.Price

	extraPieces := clamp(sel.ExtraPieces)
	saucePots := clamp(sel.ExtraSaucePots)
	snackTotal := 0
	for _, n := range sel.ExtraSnacks {
		snackTotal += clamp(n)
	}

	switch family {
	case entity.FamilyBurger:
		price += float64(len(sel.AddedIngredients)) * product.ExtraPiecePrice
		price += float64(snackTotal) * product.ExtraSnackPrice
		if sel.Bathed {
			price += BathedSurcharge
		}
	case entity.FamilyWings, entity.FamilyPasta:
		price += float64(extraPieces) * product.ExtraPiecePrice
	case entity.FamilyBox:
		price += float64(snackTotal) * product.ExtraSnackPrice
		price += float64(extraPieces) * product.ExtraPiecePrice
	}

	if family.SellsSaucePots() {
		price += float64(saucePots) * product.ExtraSaucePotPrice
	}

	// Flat add-ons apply to every family, unknown included.
	for _, name := range sel.Extras {
		price += product.ExtraPrice(name)
	}

	return Quote{
		UnitPrice:   price,
		Description: describe(family, sel, extraPieces, saucePots),
	}, nil
}

func validate(product *entity.Product, sel Selection) error {
	if len(product.FlavorOptions) > 0 {
		if sel.SplitFlavor {
			if len(sel.HalfFlavors) < 2 || sel.HalfFlavors[0] == "" || sel.HalfFlavors[1] == "" {
				return ErrSplitFlavorsIncomplete
			}
		} else if sel.Flavor == "" {
			return ErrFlavorRequired
		}
	}

	if sel.Bathed && !sel.SplitFlavor && sel.Flavor == "" {
		return ErrBathedSauceRequired
	}

	return nil
}

// describe assembles the kitchen summary. Clause order is fixed so that two
// equal selections always produce the same string, which is also the cart
// line identity.
func describe(family entity.Family, sel Selection, extraPieces, saucePots int) string {
	var clauses []string

	if len(sel.RemovedIngredients) > 0 {
		clauses = append(clauses, "Sin: "+strings.Join(sel.RemovedIngredients, ", "))
	}
	if len(sel.AddedIngredients) > 0 {
		clauses = append(clauses, "Extra: "+strings.Join(sel.AddedIngredients, ", "))
	}
	if extraPieces > 0 && (family == entity.FamilyWings || family == entity.FamilyPasta || family == entity.FamilyBox) {
		clauses = append(clauses, fmt.Sprintf("+%d piezas", extraPieces))
	}
	if snacks := describeSnacks(sel.ExtraSnacks); snacks != "" {
		clauses = append(clauses, snacks)
	}
	if flavor := describeFlavor(sel); flavor != "" {
		clauses = append(clauses, flavor)
	}
	if saucePots > 0 && family.SellsSaucePots() {
		unit := "botes de salsa"
		if saucePots == 1 {
			unit = "bote de salsa"
		}
		clauses = append(clauses, fmt.Sprintf("+%d %s", saucePots, unit))
	}
	if len(sel.Extras) > 0 {
		clauses = append(clauses, "Agregados: "+strings.Join(sel.Extras, ", "))
	}

	return strings.Join(clauses, " | ")
}

func describeSnacks(snacks map[string]int) string {
	kinds := make([]string, 0, len(snacks))
	for kind, n := range snacks {
		if clamp(n) > 0 {
			kinds = append(kinds, kind)
		}
	}
	if len(kinds) == 0 {
		return ""
	}
	sort.Strings(kinds)

	parts := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		parts = append(parts, fmt.Sprintf("%s x%d", kind, snacks[kind]))
	}

	return "Snacks extra: " + strings.Join(parts, ", ")
}

func describeFlavor(sel Selection) string {
	if sel.SplitFlavor && len(sel.HalfFlavors) >= 2 {
		return fmt.Sprintf("Mitad %s / Mitad %s", sel.HalfFlavors[0], sel.HalfFlavors[1])
	}
	if sel.Flavor == "" {
		return ""
	}
	if sel.Bathed {
		return "Sabor: " + sel.Flavor + " (bañada)"
	}

	return "Sabor: " + sel.Flavor
}

func clamp(n int) int {
	if n < 0 {
		return 0
	}

	return n
}
