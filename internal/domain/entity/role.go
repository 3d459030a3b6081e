// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system. The set
// is open: profile documents may carry tags this build does not know, and
// anything unrecognized fails closed in the visibility gate.
type Role string

const (
	// RoleCustomer is a regular storefront customer.
	RoleCustomer Role = "customer"
	// RoleAdmin has full dashboard access and bypasses the store-closed gate.
	RoleAdmin Role = "admin"
	// RoleWaiter serves tables and sees full orders on the kitchen board.
	RoleWaiter Role = "waiter"
	// RoleCourier delivers orders and sees full orders on the kitchen board.
	RoleCourier Role = "courier"
	// RoleGrill is the burger station.
	RoleGrill Role = "grill"
	// RoleFryer is the fried-snack station: wings, boneless, strips, boxes.
	RoleFryer Role = "fryer"
	// RoleBar is the beverage station.
	RoleBar Role = "bar"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsStaff reports whether the role belongs on the kitchen board at all.
func (r Role) IsStaff() bool {
	switch r {
	case RoleAdmin, RoleWaiter, RoleCourier, RoleGrill, RoleFryer, RoleBar:
		return true
	default:
		return false
	}
}

// IsPrivileged reports whether the role sees every category and the full
// order metadata (customer name, address, payment method, totals).
func (r Role) IsPrivileged() bool {
	switch r {
	case RoleAdmin, RoleWaiter, RoleCourier:
		return true
	default:
		return false
	}
}

// stationFamilies is the fixed station-role to product-family assignment.
var stationFamilies = map[Role][]Family{
	RoleGrill: {FamilyBurger},
	RoleFryer: {FamilyWings, FamilyBox, FamilySimple},
	RoleBar:   {FamilyDrink},
}

// CanSeeCategory reports whether the role may see order line items of the
// given category. Privileged roles see everything; station roles see only
// their assigned families; anything else sees nothing.
func (r Role) CanSeeCategory(category string) bool {
	if r.IsPrivileged() {
		return true
	}

	families, ok := stationFamilies[r]
	if !ok {
		return false
	}

	family := ResolveFamily(category)
	for _, f := range families {
		if f == family {
			return true
		}
	}

	return false
}

// CanSeeOrderMetadata reports whether the role may see who ordered, where
// it goes and how it is paid. Station roles only ever see their items.
func (r Role) CanSeeOrderMetadata() bool {
	return r.IsPrivileged()
}
