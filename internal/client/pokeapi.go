package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"

	"pokedex/browser/internal/config"
	apperrors "pokedex/browser/internal/errors"
	"pokedex/browser/internal/proxy"
)

// CatalogClient is the read-only remote catalog service.
type CatalogClient interface {
	ListPokemon(ctx context.Context, offset, limit int) (*PokemonPage, error)
	GetPokemon(ctx context.Context, url string) (*Pokemon, error)
	GetPokemonByID(ctx context.Context, id int) (*Pokemon, error)
	GetSpecies(ctx context.Context, url string) (*NamedRecord, error)
	GetAbility(ctx context.Context, url string) (*NamedRecord, error)
	GetMove(ctx context.Context, url string) (*NamedRecord, error)
	Close() error
}

type catalogClient struct {
	rl            ratelimit.Limiter
	baseURL       string
	timeout       time.Duration
	httpClient    *resty.Client
	proxySupplier proxy.ProxySupplier

	// Cool-down after the catalog answered 429
	circuitBreakerMutex sync.RWMutex
	quotaExceededUntil  time.Time
	circuitBreakerDelay time.Duration
}

// NewCatalogClient creates a client for the catalog at cfg.BaseURL. Requests
// are never retried; every failure surfaces to the caller. A 429 moves later
// requests to the next proxy, or opens the cool-down when there is none.
func NewCatalogClient(cfg config.CatalogConfig, proxySupplier proxy.ProxySupplier) CatalogClient {
	client := resty.New().
		SetRetryCount(0).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", "application/json")

	if proxySupplier != nil {
		if proxyURL := proxySupplier.Get(); proxyURL != "" {
			client.SetProxy(proxyURL)
			log.Infof("🔗 Using proxy: %s", proxyURL)
		}
	}

	rl := ratelimit.NewUnlimited()
	if cfg.MaxRequestsPerSecond > 0 {
		rl = ratelimit.New(cfg.MaxRequestsPerSecond)
	}

	return &catalogClient{
		rl:                  rl,
		baseURL:             cfg.BaseURL,
		timeout:             cfg.Timeout,
		httpClient:          client,
		proxySupplier:       proxySupplier,
		circuitBreakerDelay: cfg.Cooldown,
	}
}

func (c *catalogClient) ListPokemon(ctx context.Context, offset, limit int) (*PokemonPage, error) {
	url := fmt.Sprintf("%s/pokemon", c.baseURL)
	params := map[string]string{
		"offset": strconv.Itoa(offset),
		"limit":  strconv.Itoa(limit),
	}

	var page PokemonPage
	if err := c.fetchJSON(ctx, url, params, &page); err != nil {
		return nil, err
	}

	log.Debugf("Fetched pokemon list offset=%d limit=%d with %d results", offset, limit, len(page.Results))
	return &page, nil
}

func (c *catalogClient) GetPokemon(ctx context.Context, url string) (*Pokemon, error) {
	var pokemon Pokemon
	if err := c.fetchJSON(ctx, url, nil, &pokemon); err != nil {
		return nil, err
	}
	return &pokemon, nil
}

func (c *catalogClient) GetPokemonByID(ctx context.Context, id int) (*Pokemon, error) {
	return c.GetPokemon(ctx, fmt.Sprintf("%s/pokemon/%d", c.baseURL, id))
}

func (c *catalogClient) GetSpecies(ctx context.Context, url string) (*NamedRecord, error) {
	return c.getNamedRecord(ctx, url)
}

func (c *catalogClient) GetAbility(ctx context.Context, url string) (*NamedRecord, error) {
	return c.getNamedRecord(ctx, url)
}

func (c *catalogClient) GetMove(ctx context.Context, url string) (*NamedRecord, error) {
	return c.getNamedRecord(ctx, url)
}

func (c *catalogClient) Close() error {
	return c.httpClient.Close()
}

func (c *catalogClient) getNamedRecord(ctx context.Context, url string) (*NamedRecord, error) {
	var record NamedRecord
	if err := c.fetchJSON(ctx, url, nil, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *catalogClient) isCircuitBreakerOpen() bool {
	c.circuitBreakerMutex.RLock()
	now := time.Now()
	wasOpen := now.Before(c.quotaExceededUntil)
	wasTriggered := !c.quotaExceededUntil.IsZero()
	c.circuitBreakerMutex.RUnlock()

	if !wasOpen && wasTriggered {
		c.circuitBreakerMutex.Lock()
		if !c.quotaExceededUntil.IsZero() && now.After(c.quotaExceededUntil) {
			c.quotaExceededUntil = time.Time{}
			log.Infof("✅ Catalog cool-down over - requests are allowed again")
		}
		c.circuitBreakerMutex.Unlock()
	}

	return wasOpen
}

func (c *catalogClient) triggerCircuitBreaker() {
	if c.circuitBreakerDelay <= 0 {
		return
	}

	c.circuitBreakerMutex.Lock()
	defer c.circuitBreakerMutex.Unlock()

	c.quotaExceededUntil = time.Now().Add(c.circuitBreakerDelay)
	log.Warnf("🚫 Catalog rate limit hit! Requests disabled until %v",
		c.quotaExceededUntil.Format("15:04:05"))
}

func (c *catalogClient) getRemainingCircuitBreakerTime() time.Duration {
	c.circuitBreakerMutex.RLock()
	defer c.circuitBreakerMutex.RUnlock()

	remaining := time.Until(c.quotaExceededUntil)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// switchProxy moves later requests to the next proxy. It reports false when
// there is no other proxy to move to.
func (c *catalogClient) switchProxy() bool {
	if c.proxySupplier == nil || c.proxySupplier.Len() < 2 {
		return false
	}

	newProxy := c.proxySupplier.Get()
	log.Infof("🔄 Switching to new proxy: %s", newProxy)
	c.httpClient.SetProxy(newProxy)
	return true
}

// fetchJSON issues one GET and decodes the body into out. Failures are
// classified: 404 is NotFound, other statuses and transport failures are
// Network, bad bodies are Decode, and a done context is Canceled or
// DeadlineExceeded.
func (c *catalogClient) fetchJSON(ctx context.Context, url string, params map[string]string, out any) error {
	if c.isCircuitBreakerOpen() {
		remaining := c.getRemainingCircuitBreakerTime()
		log.Debugf("🚫 Request blocked by cool-down. Remaining time: %v", remaining.Round(time.Second))
		return apperrors.Networkf("catalog rate limit reached, requests disabled for %v more", remaining.Round(time.Second)).
			WithMeta("url", url)
	}

	c.rl.Take()

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.httpClient.R().
		SetContext(reqCtx).
		SetQueryParams(params).
		Get(url)
	if err != nil {
		if ctxErr := apperrors.FromContext(reqCtx, err, fmt.Sprintf("request to %s aborted", url)); ctxErr != nil {
			return ctxErr.WithMeta("url", url)
		}
		return apperrors.WrapWithCodef(err, apperrors.CodeNetwork, "failed to fetch %s", url).WithMeta("url", url)
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return apperrors.NotFoundf("%s not found", url).WithMeta("url", url)
	case resp.StatusCode() == http.StatusTooManyRequests:
		log.Warnf("🚫 Rate limit exceeded for URL: %s", url)
		if !c.switchProxy() {
			c.triggerCircuitBreaker()
		}
		return apperrors.Networkf("HTTP error: %s", resp.Status()).WithMeta("url", url)
	case !resp.IsSuccess():
		return apperrors.Networkf("HTTP error: %s", resp.Status()).WithMeta("url", url)
	}

	if err := json.Unmarshal([]byte(resp.String()), out); err != nil {
		return apperrors.WrapWithCodef(err, apperrors.CodeDecode, "malformed response from %s", url).WithMeta("url", url)
	}

	if v, ok := out.(validator); ok {
		if err := v.validate(); err != nil {
			return apperrors.WrapWithCodef(err, apperrors.CodeDecode, "unexpected response from %s", url).WithMeta("url", url)
		}
	}

	return nil
}
