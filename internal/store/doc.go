// Package store provides keyed in-memory repositories for the marketplace
// entities. A repository knows nothing about other entity types; rules that
// span entities (uniqueness, references, cascades) belong to the service
// layer.
package store
