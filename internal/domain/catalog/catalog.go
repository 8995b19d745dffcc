package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"meopastel/internal/domain/entities"
)

// Static vendor catalog. Reference data only; nothing here is mutated
// after load.

var (
	priceBasico   = decimal.NewFromInt(12)
	priceEspecial = decimal.NewFromInt(16)
	pricePremium  = decimal.NewFromInt(22)
)

var Fillings = []entities.Filling{
	// Salgados - Básico
	{ID: "queijo", Name: "Queijo Muçarela", Price: priceBasico, Category: entities.CategoryBasico, Axis: entities.FlavorSalgado},
	{ID: "presunto", Name: "Presunto", Price: priceBasico, Category: entities.CategoryBasico, Axis: entities.FlavorSalgado},
	{ID: "milho", Name: "Milho Verde", Price: priceBasico, Category: entities.CategoryBasico, Axis: entities.FlavorSalgado},
	{ID: "ovo", Name: "Ovo Cozido", Price: priceBasico, Category: entities.CategoryBasico, Axis: entities.FlavorSalgado},
	{ID: "tomate", Name: "Tomate", Price: priceBasico, Category: entities.CategoryBasico, Axis: entities.FlavorSalgado},
	{ID: "azeitona", Name: "Azeitona", Price: priceBasico, Category: entities.CategoryBasico, Axis: entities.FlavorSalgado},

	// Salgados - Especial
	{ID: "carne", Name: "Carne Moída", Price: priceEspecial, Category: entities.CategoryEspecial, Axis: entities.FlavorSalgado},
	{ID: "frango", Name: "Frango Desfiado", Price: priceEspecial, Category: entities.CategoryEspecial, Axis: entities.FlavorSalgado},
	{ID: "calabresa", Name: "Calabresa", Price: priceEspecial, Category: entities.CategoryEspecial, Axis: entities.FlavorSalgado},
	{ID: "palmito", Name: "Palmito", Price: priceEspecial, Category: entities.CategoryEspecial, Axis: entities.FlavorSalgado},
	{ID: "catupiry", Name: "Catupiry Original", Price: priceEspecial, Category: entities.CategoryEspecial, Axis: entities.FlavorSalgado},

	// Salgados - Premium
	{ID: "camarao", Name: "Camarão", Price: pricePremium, Category: entities.CategoryPremium, Axis: entities.FlavorSalgado},
	{ID: "carne-seca", Name: "Carne Seca", Price: pricePremium, Category: entities.CategoryPremium, Axis: entities.FlavorSalgado},
	{ID: "bacalhau", Name: "Bacalhau", Price: pricePremium, Category: entities.CategoryPremium, Axis: entities.FlavorSalgado},
	{ID: "quatro-queijos", Name: "Quatro Queijos", Price: pricePremium, Category: entities.CategoryPremium, Axis: entities.FlavorSalgado},
	{ID: "pepperoni", Name: "Pepperoni", Price: pricePremium, Category: entities.CategoryPremium, Axis: entities.FlavorSalgado},

	// Doces - Básico
	{ID: "banana", Name: "Banana", Price: priceBasico, Category: entities.CategoryBasico, Axis: entities.FlavorDoce},
	{ID: "doce-leite", Name: "Doce de Leite", Price: priceBasico, Category: entities.CategoryBasico, Axis: entities.FlavorDoce},
	{ID: "goiabada", Name: "Goiabada", Price: priceBasico, Category: entities.CategoryBasico, Axis: entities.FlavorDoce},
	{ID: "coco", Name: "Coco Ralado", Price: priceBasico, Category: entities.CategoryBasico, Axis: entities.FlavorDoce},

	// Doces - Especial
	{ID: "chocolate", Name: "Chocolate ao Leite", Price: priceEspecial, Category: entities.CategoryEspecial, Axis: entities.FlavorDoce},
	{ID: "morango", Name: "Morango Fresco", Price: priceEspecial, Category: entities.CategoryEspecial, Axis: entities.FlavorDoce},
	{ID: "leite-ninho", Name: "Leite Ninho", Price: priceEspecial, Category: entities.CategoryEspecial, Axis: entities.FlavorDoce},

	// Doces - Premium
	{ID: "nutella", Name: "Nutella Original", Price: pricePremium, Category: entities.CategoryPremium, Axis: entities.FlavorDoce},
	{ID: "chocolate-branco", Name: "Chocolate Branco", Price: pricePremium, Category: entities.CategoryPremium, Axis: entities.FlavorDoce},
}

var Beverages = []entities.Beverage{
	{ID: "coca-cola", Name: "Coca-Cola 350ml", Price: decimal.NewFromInt(6), Category: entities.BeverageRefrigerante},
	{ID: "guarana", Name: "Guaraná 350ml", Price: decimal.NewFromInt(5), Category: entities.BeverageRefrigerante},
	{ID: "suco-laranja", Name: "Suco de Laranja 400ml", Price: decimal.NewFromInt(8), Category: entities.BeverageSuco},
	{ID: "suco-uva", Name: "Suco de Uva 400ml", Price: decimal.NewFromInt(8), Category: entities.BeverageSuco},
	{ID: "caldo-cana-p", Name: "Caldo de Cana 300ml", Price: decimal.NewFromInt(7), Category: entities.BeverageCaldoDeCana},
	{ID: "caldo-cana-m", Name: "Caldo de Cana 500ml", Price: decimal.NewFromInt(10), Category: entities.BeverageCaldoDeCana},
	{ID: "caldo-cana-g", Name: "Caldo de Cana 700ml", Price: decimal.NewFromInt(13), Category: entities.BeverageCaldoDeCana},
}

func FindFillingByID(id string) (entities.Filling, bool) {
	for _, f := range Fillings {
		if f.ID == id {
			return f, true
		}
	}
	return entities.Filling{}, false
}

// FindFillingByName resolves a display name case- and
// whitespace-insensitively, restricted to one flavor axis. Used to match
// provider-suggested combinations back to catalog entries.
func FindFillingByName(name string, axis entities.FlavorAxis) (entities.Filling, bool) {
	normalized := normalize(name)
	for _, f := range Fillings {
		if f.Axis == axis && normalize(f.Name) == normalized {
			return f, true
		}
	}
	return entities.Filling{}, false
}

func FillingsByAxis(axis entities.FlavorAxis) []entities.Filling {
	out := make([]entities.Filling, 0, len(Fillings))
	for _, f := range Fillings {
		if f.Axis == axis {
			out = append(out, f)
		}
	}
	return out
}

func FillingNamesByAxis(axis entities.FlavorAxis) []string {
	fillings := FillingsByAxis(axis)
	names := make([]string, 0, len(fillings))
	for _, f := range fillings {
		names = append(names, f.Name)
	}
	return names
}

func FindBeverageByID(id string) (entities.Beverage, bool) {
	for _, b := range Beverages {
		if b.ID == id {
			return b, true
		}
	}
	return entities.Beverage{}, false
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
