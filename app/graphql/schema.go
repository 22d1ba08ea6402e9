// Package graphql defines the read-only catalog schema exposed at
// POST /api/graphql. It covers gemstones and categories only; mutations go
// through the REST admin surface.
package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/kashvi-store/app/models"
	"github.com/shashiranjanraj/kashvi-store/app/repositories"
	gql "github.com/shashiranjanraj/kashvi-store/pkg/graphql"
)

var categoryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Category",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.Int,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return int(p.Source.(models.Category).ID), nil
			},
		},
		"name": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.Category).Name, nil
			},
		},
		"description": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.Category).Description, nil
			},
		},
		"image": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.Category).Image, nil
			},
		},
	},
})

var gemstoneType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Gemstone",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.Int,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return int(p.Source.(models.Gemstone).ID), nil
			},
		},
		"name": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.Gemstone).Name, nil
			},
		},
		"type": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.Gemstone).Type, nil
			},
		},
		"description": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.Gemstone).Description, nil
			},
		},
		"price": &graphql.Field{
			Type: graphql.Float,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.Gemstone).Price, nil
			},
		},
		"images": &graphql.Field{
			Type: graphql.NewList(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.Gemstone).ImageList(), nil
			},
		},
		"certification": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.Gemstone).Certification, nil
			},
		},
		"featured": &graphql.Field{
			Type: graphql.Boolean,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.Gemstone).Featured, nil
			},
		},
		"stock": &graphql.Field{
			Type: graphql.Int,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.Gemstone).Stock, nil
			},
		},
		"category": &graphql.Field{
			Type: categoryType,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				g := p.Source.(models.Gemstone)
				if g.Category == nil {
					return nil, nil
				}
				return *g.Category, nil
			},
		},
	},
})

var queryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Query",
	Fields: graphql.Fields{
		"gemstones": &graphql.Field{
			Type: graphql.NewList(gemstoneType),
			Args: graphql.FieldConfigArgument{
				"featured": &graphql.ArgumentConfig{Type: graphql.Boolean},
				"category": &graphql.ArgumentConfig{Type: graphql.String},
				"type":     &graphql.ArgumentConfig{Type: graphql.String},
				"search":   &graphql.ArgumentConfig{Type: graphql.String},
				"page":     &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 1},
				"limit":    &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 20},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				filter := repositories.GemstoneFilter{
					Page:  intArg(p, "page", 1),
					Limit: intArg(p, "limit", 20),
				}
				if v, ok := p.Args["featured"].(bool); ok {
					filter.Featured = v
				}
				if v, ok := p.Args["category"].(string); ok {
					filter.Category = v
				}
				if v, ok := p.Args["type"].(string); ok {
					filter.Type = v
				}
				if v, ok := p.Args["search"].(string); ok {
					filter.Search = v
				}
				gems, _, err := repositories.NewGemstoneRepository().List(filter)
				return gems, err
			},
		},
		"gemstone": &graphql.Field{
			Type: gemstoneType,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				id, _ := p.Args["id"].(int)
				g, err := repositories.NewGemstoneRepository().FindByID(uint(id))
				if err != nil || !g.Active {
					return nil, nil
				}
				return g, nil
			},
		},
		"categories": &graphql.Field{
			Type: graphql.NewList(categoryType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return repositories.NewCategoryRepository().ActiveOrdered()
			},
		},
	},
})

func intArg(p graphql.ResolveParams, name string, def int) int {
	if v, ok := p.Args[name].(int); ok && v > 0 {
		return v
	}
	return def
}

// CatalogSchema builds the storefront query schema. It is called once at
// route registration.
func CatalogSchema() (graphql.Schema, error) {
	return gql.NewSchema(queryType)
}
