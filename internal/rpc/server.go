package rpc

import (
	"log/slog"

	"github.com/daniilsolovey/articles/internal/articles"
	"github.com/daniilsolovey/articles/internal/pager"
	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"
)

func New(logger *slog.Logger, manager *articles.Manager, paging pager.Config) *zenrpc.Server {
	rpcService := NewArticleService(logger, manager, paging)
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register("article", rpcService)
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "articles", nil))

	return rpcServer
}
