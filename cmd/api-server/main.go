package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"fichahub/internal/credits"
	synchub "fichahub/internal/sync"
	"fichahub/internal/workbook"
	"fichahub/pkg/utils"
)

func main() {
	cfg := utils.LoadConfig()

	store := credits.NewStore()
	loader := workbook.NewLoader(cfg.WorkbookURL, cfg.GeralSheet, cfg.AutoriasSheet)

	// Best-effort initial load. A failure is logged and the server
	// starts with an empty dataset; the view degrades to the empty
	// state instead of refusing to come up.
	if cfg.WorkbookURL == "" {
		log.Println("FICHAHUB_WORKBOOK_URL not set, starting with an empty dataset")
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if ds, err := loader.Load(ctx); err != nil {
			log.Printf("initial workbook load failed: %v", err)
		} else {
			store.Replace(ds)
		}
		cancel()
	}

	router := gin.Default()

	// Optional: avoid "trusted all proxies" warning
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	hub := synchub.NewHub()
	router.GET("/ws", synchub.WSHandler(hub))
	tcpSrv := synchub.NewServer(cfg.SyncAddr, hub)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "workbook": cfg.WorkbookURL})
	})

	router.GET("/ready", func(c *gin.Context) {
		// Zero rows is still ready: the empty state is a valid page.
		stats := hub.Stats()
		c.JSON(http.StatusOK, gin.H{
			"status":      "ready",
			"rows":        store.RowCount(),
			"loaded_at":   store.LoadedAt(),
			"tcp_clients": stats.TCPClients,
			"ws_clients":  stats.WSClients,
		})
	})

	router.GET("/debug", func(c *gin.Context) {
		stats := hub.Stats()
		c.JSON(http.StatusOK, gin.H{
			"workbook":    cfg.WorkbookURL,
			"asset_base":  cfg.AssetBase,
			"rows":        store.RowCount(),
			"tcp_clients": stats.TCPClients,
			"ws_clients":  stats.WSClients,
		})
	})

	creditsHandler := credits.NewHandler(store, loader, hub, cfg.AssetBase)
	creditsHandler.RegisterRoutes(router.Group("/credits"))

	httpSrv := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	errCh := make(chan error, 2)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := tcpSrv.Run(); err != nil {
			errCh <- err
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Printf("HTTP API server listening on %s", cfg.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("shutdown signal received: %s", sig)
	case err := <-errCh:
		log.Printf("server error: %v", err)
	}

	log.Println("shutting down servers")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown error: %v", err)
	}
	if err := tcpSrv.Close(); err != nil {
		log.Printf("tcp shutdown error: %v", err)
	}

	wg.Wait()
	log.Println("servers stopped")
}
