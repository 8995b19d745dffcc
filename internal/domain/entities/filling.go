package entities

import "github.com/shopspring/decimal"

// FlavorAxis partitions the catalog: salty and sweet fillings never mix
// inside one pastel.

type FlavorAxis string

const (
	FlavorSalgado FlavorAxis = "salgado"
	FlavorDoce    FlavorAxis = "doce"
)

// FillingCategory is a display tier only; it carries no pricing behavior.

type FillingCategory string

const (
	CategoryBasico   FillingCategory = "Básico"
	CategoryEspecial FillingCategory = "Especial"
	CategoryPremium  FillingCategory = "Premium"
)

type BeverageCategory string

const (
	BeverageRefrigerante BeverageCategory = "Refrigerante"
	BeverageSuco         BeverageCategory = "Suco"
	BeverageCaldoDeCana  BeverageCategory = "Caldo de Cana"
)

// Filling is an immutable catalog entry. Never mutated after load.

type Filling struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category FillingCategory `json:"category"`
	Axis     FlavorAxis      `json:"axis"`
}

// Beverage is an immutable catalog entry.

type Beverage struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Price    decimal.Decimal  `json:"price"`
	Category BeverageCategory `json:"category"`
}
