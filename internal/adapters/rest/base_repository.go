package rest

import (
	"fmt"
	"net/url"

	"github.com/SscSPs/business_panel/internal/apiclient"
	"github.com/SscSPs/business_panel/internal/core/domain"
)

// BaseRepository provides common functionality for all backend repositories
type BaseRepository struct {
	Client *apiclient.Client
}

// itemPath joins a collection path and an id, escaping the id.
func itemPath(collection string, id domain.ID) string {
	return fmt.Sprintf("%s/%s", collection, url.PathEscape(id.String()))
}
