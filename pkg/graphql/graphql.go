// Package graphql provides a thin helper around graphql-go for building
// read-only query schemas served over HTTP.
package graphql

import (
	"net/http"

	"github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/kashvi-store/pkg/ctx"
)

// NewSchema creates a GraphQL schema from a root query object.
func NewSchema(query *graphql.Object) (graphql.Schema, error) {
	return graphql.NewSchema(graphql.SchemaConfig{
		Query: query,
	})
}

// request is the standard GraphQL-over-HTTP POST body.
type request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Handler serves the schema over HTTP POST. Errors from resolvers surface in
// the standard GraphQL "errors" array, not as HTTP error codes.
func Handler(schema graphql.Schema) ctx.HandlerFunc {
	return func(c *ctx.Context) {
		var req request
		if errs, err := c.ShouldBindJSON(&req); err != nil || len(errs) > 0 {
			c.Error(http.StatusBadRequest, "invalid GraphQL request body")
			return
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			OperationName:  req.OperationName,
			VariableValues: req.Variables,
			Context:        c.Context(),
		})
		c.JSON(http.StatusOK, result)
	}
}
