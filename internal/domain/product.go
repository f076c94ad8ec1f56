package domain

import "time"

// Product описывает позицию каталога
type Product struct {
	ID               int64
	Name             string
	Price            int64 // Цена хранится в центах
	Image            string
	ShortDescription string
	LongDescription  string
	BandName         string
	Genre            string
	Year             int32
	CreatedAt        time.Time
}

func NewProduct(name string, price int64, image, shortDescription, longDescription, bandName, genre string, year int32) *Product {
	return &Product{
		Name:             name,
		Price:            price,
		Image:            image,
		ShortDescription: shortDescription,
		LongDescription:  longDescription,
		BandName:         bandName,
		Genre:            genre,
		Year:             year,
	}
}
