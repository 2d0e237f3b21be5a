package rpc

import (
	"context"
	"encoding/json"

	"github.com/vmkteam/zenrpc/v2"
	"github.com/vmkteam/zenrpc/v2/smd"
)

var RPC = struct {
	ArticleService struct{ List, ByID, Latest, All, Create, Update, Delete string }
}{
	ArticleService: struct{ List, ByID, Latest, All, Create, Update, Delete string }{
		List:   "list",
		ByID:   "byid",
		Latest: "latest",
		All:    "all",
		Create: "create",
		Update: "update",
		Delete: "delete",
	},
}

func articleInputSchema(name, description string) smd.JSONSchema {
	return smd.JSONSchema{
		Name:        name,
		Description: description,
		Type:        smd.Object,
	}
}

func (ArticleService) SMD() smd.ServiceInfo {
	return smd.ServiceInfo{
		Methods: map[string]smd.Service{
			"List": {
				Description: `List returns a page of articles ordered by id with the pager window.`,
				Parameters: []smd.JSONSchema{
					{
						Name:        "page",
						Optional:    true,
						Description: `page number (1-based), first page when omitted`,
						Type:        smd.Integer,
					},
					{
						Name:        "pageSize",
						Optional:    true,
						Description: `items per page, 5 when omitted`,
						Type:        smd.Integer,
					},
				},
				Returns: smd.JSONSchema{
					Description: `page of articles`,
					Optional:    true,
					Type:        smd.Object,
				},
				Errors: map[int]string{
					500: "internal server error",
				},
			},
			"ByID": {
				Description: `ByID returns a single article.`,
				Parameters: []smd.JSONSchema{
					{
						Name:        "id",
						Description: `article id`,
						Type:        smd.Integer,
					},
				},
				Returns: smd.JSONSchema{
					Description: `article`,
					Optional:    true,
					Type:        smd.Object,
				},
				Errors: map[int]string{
					400: "id must be positive",
					404: "article not found",
					500: "internal server error",
				},
			},
			"Latest": {
				Description: `Latest returns the article with the highest id, null when there are none.`,
				Parameters:  []smd.JSONSchema{},
				Returns: smd.JSONSchema{
					Description: `latest article`,
					Optional:    true,
					Type:        smd.Object,
				},
				Errors: map[int]string{
					500: "internal server error",
				},
			},
			"All": {
				Description: `All returns every article ordered by id.`,
				Parameters:  []smd.JSONSchema{},
				Returns: smd.JSONSchema{
					Description: `list of articles`,
					Optional:    true,
					Type:        smd.Array,
				},
				Errors: map[int]string{
					500: "internal server error",
				},
			},
			"Create": {
				Description: `Create stores a new article.`,
				Parameters: []smd.JSONSchema{
					articleInputSchema("article", `article fields`),
				},
				Returns: smd.JSONSchema{
					Description: `created article`,
					Optional:    true,
					Type:        smd.Object,
				},
				Errors: map[int]string{
					400: "invalid article",
					409: "article with this title and author already exists",
					500: "internal server error",
				},
			},
			"Update": {
				Description: `Update replaces the editable fields of an article.`,
				Parameters: []smd.JSONSchema{
					{
						Name:        "id",
						Description: `article id`,
						Type:        smd.Integer,
					},
					articleInputSchema("article", `article fields`),
				},
				Returns: smd.JSONSchema{
					Description: `updated article`,
					Optional:    true,
					Type:        smd.Object,
				},
				Errors: map[int]string{
					400: "invalid article",
					404: "article not found",
					409: "article with this title and author already exists",
					500: "internal server error",
				},
			},
			"Delete": {
				Description: `Delete removes an article.`,
				Parameters: []smd.JSONSchema{
					{
						Name:        "id",
						Description: `article id`,
						Type:        smd.Integer,
					},
				},
				Returns: smd.JSONSchema{
					Description: `true when deleted`,
					Type:        smd.Boolean,
				},
				Errors: map[int]string{
					404: "article not found",
					500: "internal server error",
				},
			},
		},
	}
}

// Invoke dispatches a JSON-RPC call to the matching ArticleService method.
func (s ArticleService) Invoke(ctx context.Context, method string, params json.RawMessage) zenrpc.Response {
	resp := zenrpc.Response{}
	var err error

	switch method {
	case RPC.ArticleService.List:
		var args = struct {
			Page     *int `json:"page"`
			PageSize *int `json:"pageSize"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"page", "pageSize"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.List(ctx, args.Page, args.PageSize))

	case RPC.ArticleService.ByID:
		var args = struct {
			ID int64 `json:"id"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"id"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.ByID(ctx, args.ID))

	case RPC.ArticleService.Latest:
		resp.Set(s.Latest(ctx))

	case RPC.ArticleService.All:
		resp.Set(s.All(ctx))

	case RPC.ArticleService.Create:
		var args = struct {
			Article ArticleInput `json:"article"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"article"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Create(ctx, args.Article))

	case RPC.ArticleService.Update:
		var args = struct {
			ID      int64        `json:"id"`
			Article ArticleInput `json:"article"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"id", "article"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Update(ctx, args.ID, args.Article))

	case RPC.ArticleService.Delete:
		var args = struct {
			ID int64 `json:"id"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"id"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Delete(ctx, args.ID))

	default:
		resp = zenrpc.NewResponseError(nil, zenrpc.MethodNotFound, "", nil)
	}

	return resp
}
