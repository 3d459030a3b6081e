package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_CanSeeCategory(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		category string
		want     bool
	}{
		{"grill sees burgers", RoleGrill, "Hamburguesas", true},
		{"grill does not see wings", RoleGrill, "Alitas", false},
		{"fryer sees wings", RoleFryer, "Alitas", true},
		{"fryer sees boneless", RoleFryer, "Boneless", true},
		{"fryer sees family box", RoleFryer, "Paquetes familiares", true},
		{"fryer does not see drinks", RoleFryer, "Bebidas", false},
		{"bar sees drinks", RoleBar, "Frappes", true},
		{"bar does not see pasta", RoleBar, "Pasta", false},
		{"admin sees everything", RoleAdmin, "Pasta", true},
		{"waiter sees everything", RoleWaiter, "Bebidas", true},
		{"courier sees everything", RoleCourier, "Hamburguesas", true},
		{"customer sees nothing", RoleCustomer, "Hamburguesas", false},
		{"unknown role fails closed", Role("intern"), "Hamburguesas", false},
		{"empty role fails closed", Role(""), "Bebidas", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.CanSeeCategory(tt.category))
		})
	}
}

func TestRole_CanSeeOrderMetadata(t *testing.T) {
	assert.True(t, RoleAdmin.CanSeeOrderMetadata())
	assert.True(t, RoleWaiter.CanSeeOrderMetadata())
	assert.True(t, RoleCourier.CanSeeOrderMetadata())
	assert.False(t, RoleGrill.CanSeeOrderMetadata())
	assert.False(t, RoleFryer.CanSeeOrderMetadata())
	assert.False(t, RoleBar.CanSeeOrderMetadata())
	assert.False(t, RoleCustomer.CanSeeOrderMetadata())
}

func TestResolveFamily(t *testing.T) {
	assert.Equal(t, FamilyBurger, ResolveFamily("Hamburguesas al carbón"))
	assert.Equal(t, FamilyBurger, ResolveFamily("Tortas"))
	assert.Equal(t, FamilyWings, ResolveFamily("ALITAS"))
	assert.Equal(t, FamilyWings, ResolveFamily("Boneless"))
	assert.Equal(t, FamilyPasta, ResolveFamily("Pasta con pollo"))
	assert.Equal(t, FamilyBox, ResolveFamily("Paquete familiar"))
	assert.Equal(t, FamilyDrink, ResolveFamily("Bebidas"))
	assert.Equal(t, FamilySimple, ResolveFamily("Papas y snacks"))
	assert.Equal(t, FamilyUnknown, ResolveFamily("Postres"))
	assert.Equal(t, FamilyUnknown, ResolveFamily(""))
}
