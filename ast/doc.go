/*
Package ast represents the parsed shape of a GraphQL document in code: type
system definitions and extensions, directive definitions, and (for
executable documents) operations and fragments.

The names of the Go types, whenever possible, match 1:1 with the names from
the GraphQL specification: https://spec.graphql.org
*/
package ast
