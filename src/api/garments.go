package api

import (
	"blacktie/src/models"
	"blacktie/src/types"
	"blacktie/src/utils"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/patrickmn/go-cache"
)

const catalogCacheKey = "catalog"

// ListGarments browses the catalog with optional filters. Unfiltered reads
// are served from the TTL cache between calls.
func (c *Client) ListGarments(ctx context.Context, filters types.GarmentQueryFilters) ([]models.Garment, error) {
	unfiltered := filters == (types.GarmentQueryFilters{})
	if unfiltered {
		if cached, found := c.cache.Get(catalogCacheKey); found {
			return cached.([]models.Garment), nil
		}
	}
	listURL, err := c.getURL("garments")
	if err != nil {
		return nil, err
	}
	query := url.Values{}
	if filters.Category != "" {
		query.Set("category", filters.Category)
	}
	if filters.Size != "" {
		query.Set("size", filters.Size)
	}
	if filters.MaxPrice > 0 {
		query.Set("max_price", fmt.Sprintf("%.2f", filters.MaxPrice))
	}
	if filters.Search != "" {
		query.Set("q", filters.Search)
	}
	body, err := c.do(ctx, http.MethodGet, listURL, query, nil)
	if err != nil {
		return nil, err
	}
	garments, err := models.ParseGarmentList(dataField(body))
	if err != nil {
		return nil, err
	}
	if unfiltered {
		c.cache.Set(catalogCacheKey, garments, cache.DefaultExpiration)
	}
	return garments, nil
}

func (c *Client) GetGarment(ctx context.Context, id uint) (*models.Garment, error) {
	getURL, err := c.getURL("garments", strconv.FormatUint(uint64(id), 10))
	if err != nil {
		return nil, err
	}
	body, err := c.do(ctx, http.MethodGet, getURL, nil, nil)
	if err != nil {
		return nil, err
	}
	return models.ParseGarment(dataField(body))
}

// CreateListing publishes a new garment. The slug is derived client-side
// from the listing name.
func (c *Client) CreateListing(ctx context.Context, body types.CreateListingRequestBody) (*models.Garment, error) {
	if err := validateBody(&body); err != nil {
		return nil, err
	}
	if body.Slug == "" {
		body.Slug = utils.MakeListingSlug(body.Name)
	}
	createURL, err := c.getURL("garments")
	if err != nil {
		return nil, err
	}
	res, err := c.do(ctx, http.MethodPost, createURL, nil, &body)
	if err != nil {
		return nil, err
	}
	c.cache.Delete(catalogCacheKey)
	return models.ParseGarment(dataField(res))
}

func (c *Client) DeleteListing(ctx context.Context, id uint) error {
	deleteURL, err := c.getURL("garments", strconv.FormatUint(uint64(id), 10))
	if err != nil {
		return err
	}
	if _, err := c.do(ctx, http.MethodDelete, deleteURL, nil, nil); err != nil {
		return err
	}
	c.cache.Delete(catalogCacheKey)
	return nil
}
