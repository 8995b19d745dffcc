package response

import "meopastel/internal/domain/entities"

type FillingResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Category string `json:"category"`
	Axis     string `json:"axis"`
}

type BeverageResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Category string `json:"category"`
}

type MenuResponse struct {
	Fillings  []FillingResponse  `json:"fillings"`
	Beverages []BeverageResponse `json:"beverages"`
}

func FromCatalog(fillings []entities.Filling, beverages []entities.Beverage) MenuResponse {
	menu := MenuResponse{
		Fillings:  make([]FillingResponse, 0, len(fillings)),
		Beverages: make([]BeverageResponse, 0, len(beverages)),
	}
	for _, f := range fillings {
		menu.Fillings = append(menu.Fillings, FillingResponse{
			ID:       f.ID,
			Name:     f.Name,
			Price:    f.Price.StringFixed(2),
			Category: string(f.Category),
			Axis:     string(f.Axis),
		})
	}
	for _, b := range beverages {
		menu.Beverages = append(menu.Beverages, BeverageResponse{
			ID:       b.ID,
			Name:     b.Name,
			Price:    b.Price.StringFixed(2),
			Category: string(b.Category),
		})
	}
	return menu
}
