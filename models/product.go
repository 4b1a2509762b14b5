package models

import (
	"slices"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryAll    Category = "all"
	CategoryWomen  Category = "women"
	CategoryMen    Category = "men"
	CategoryUnisex Category = "unisex"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryWomen, CategoryMen, CategoryUnisex:
		return true
	}
	return false
}

// FragranceNotes holds the top, middle and base notes in pyramid order.
type FragranceNotes struct {
	Top    []string `json:"top"`
	Middle []string `json:"middle"`
	Base   []string `json:"base"`
}

type Product struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Category     Category        `json:"category"`
	Brand        string          `json:"brand"`
	Volume       string          `json:"volume"`
	Price        decimal.Decimal `json:"price"`
	Rating       decimal.Decimal `json:"rating"`
	ImageURL     string          `json:"imageUrl"`
	MoodImageURL *string         `json:"moodImageUrl,omitempty"`
	Images       []string        `json:"images,omitempty"`
	InStock      bool            `json:"inStock"`
	Notes        *FragranceNotes `json:"notes,omitempty"`
}

// Clone returns a deep copy, so the result shares no slices or pointers with p.
func (p Product) Clone() Product {
	if p.MoodImageURL != nil {
		mood := *p.MoodImageURL
		p.MoodImageURL = &mood
	}
	p.Images = slices.Clone(p.Images)
	if p.Notes != nil {
		p.Notes = &FragranceNotes{
			Top:    slices.Clone(p.Notes.Top),
			Middle: slices.Clone(p.Notes.Middle),
			Base:   slices.Clone(p.Notes.Base),
		}
	}
	return p
}

// Volume is the parsed form of a product volume string such as "50ml".
// Valid is false when the string carried no readable millilitre value.
type Volume struct {
	Millilitres int
	Valid       bool
}

// Less orders volumes ascending with unparsable values last.
func (v Volume) Less(o Volume) bool {
	if v.Valid != o.Valid {
		return v.Valid
	}
	return v.Valid && v.Millilitres < o.Millilitres
}

type Brand struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Brands is the fixed brand filter set offered by the catalog, in display order.
var Brands = []Brand{
	{ID: "rabdan", Name: "Rabdan"},
	{ID: "signature-royale", Name: "Signature Royale"},
	{ID: "pure-essence", Name: "Pure Essence"},
	{ID: "coreterno", Name: "Coreterno"},
	{ID: "valley-breezes", Name: "Valley Breezes"},
	{ID: "bvlgari", Name: "BVLGARI"},
	{ID: "christian", Name: "Christian Dior"},
	{ID: "marc", Name: "Marc Antoine Barrois"},
	{ID: "escentric", Name: "Escentric Molecules"},
	{ID: "diptyque", Name: "Diptyque"},
	{ID: "giardini", Name: "Giardini di Toscana"},
	{ID: "bohoboco", Name: "Bohoboco"},
	{ID: "chanel", Name: "Chanel"},
	{ID: "versace", Name: "Versace"},
	{ID: "xerjoff", Name: "Xerjoff"},
}

const BrandAll = "all"

func IsKnownBrand(id string) bool {
	for _, b := range Brands {
		if b.ID == id {
			return true
		}
	}
	return false
}
