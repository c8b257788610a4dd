package client

import "fmt"

// NamedResource is the service's {name, url} reference pair.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// PokemonPage is one page of the listing endpoint.
type PokemonPage struct {
	Count   int             `json:"count"`
	Results []NamedResource `json:"results"`
}

func (p *PokemonPage) validate() error {
	for i, ref := range p.Results {
		if ref.URL == "" {
			return fmt.Errorf("result %d (%q) has no url", i, ref.Name)
		}
	}
	return nil
}

// Sprites holds the image URLs of a pokemon. front_default may be null.
type Sprites struct {
	FrontDefault string `json:"front_default"`
}

// PokemonType attaches a type to a pokemon.
type PokemonType struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

// PokemonAbility attaches an ability to a pokemon.
type PokemonAbility struct {
	Slot     int           `json:"slot"`
	IsHidden bool          `json:"is_hidden"`
	Ability  NamedResource `json:"ability"`
}

// PokemonMove attaches a move to a pokemon.
type PokemonMove struct {
	Move NamedResource `json:"move"`
}

// Pokemon is the detail record.
type Pokemon struct {
	ID        int              `json:"id"`
	Name      string           `json:"name"`
	Sprites   Sprites          `json:"sprites"`
	Types     []PokemonType    `json:"types"`
	Abilities []PokemonAbility `json:"abilities"`
	Moves     []PokemonMove    `json:"moves"`
	Species   NamedResource    `json:"species"`
}

// TypeNames returns the attached type names in service order.
func (p *Pokemon) TypeNames() []string {
	names := make([]string, 0, len(p.Types))
	for _, t := range p.Types {
		names = append(names, t.Type.Name)
	}
	return names
}

func (p *Pokemon) validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("pokemon %q has no id", p.Name)
	}
	if p.Species.URL == "" {
		return fmt.Errorf("pokemon %q has no species url", p.Name)
	}
	return nil
}

// Name is one localization of a record's name.
type Name struct {
	Name     string        `json:"name"`
	Language NamedResource `json:"language"`
}

// NamedRecord is the shape shared by species, ability and move records
// as far as localization is concerned.
type NamedRecord struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Names []Name `json:"names"`
}

type validator interface {
	validate() error
}
