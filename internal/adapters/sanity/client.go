package sanity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
)

// Config хранит конфигурацию подключения к контент-хранилищу.
// Клиент создается один раз при старте приложения и после инициализации
// только читается - никакого состояния на запрос.
type Config struct {
	ProjectID  string
	Dataset    string
	APIVersion string // например "2024-03-15"
	Token      string // нужен для мутаций; чтение публичного датасета работает и без него
	UseCDN     bool   // читать через CDN-хост (кешированные ответы)
}

// Client - HTTP-клиент Content Lake API (Sanity-совместимый протокол:
// GROQ-запросы через /data/query, мутации через /data/mutate).
type Client struct {
	cfg        Config
	queryHost  string
	mutateHost string
	httpClient *http.Client
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("sanity client: project id is required")
	}
	if cfg.Dataset == "" {
		return nil, fmt.Errorf("sanity client: dataset is required")
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = "2024-03-15"
	}

	queryHost := fmt.Sprintf("https://%s.api.sanity.io", cfg.ProjectID)
	if cfg.UseCDN {
		queryHost = fmt.Sprintf("https://%s.apicdn.sanity.io", cfg.ProjectID)
	}

	return &Client{
		cfg:       cfg,
		queryHost: queryHost,
		// Мутации через CDN не ходят - всегда прямой API-хост.
		mutateHost: fmt.Sprintf("https://%s.api.sanity.io", cfg.ProjectID),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}, nil
}

// queryEnvelope - конверт ответа /data/query.
type queryEnvelope struct {
	Result json.RawMessage `json:"result"`
}

// MutateResult - результат мутации с идентификаторами созданных документов.
type MutateResult struct {
	TransactionID string `json:"transactionId"`
	Results       []struct {
		ID        string `json:"id"`
		Operation string `json:"operation"`
	} `json:"results"`
}

// Query выполняет GROQ-запрос. Значения предикатов передаются параметрами
// $name - в строку запроса они не интерполируются никогда.
func (c *Client) Query(ctx context.Context, groq string, params map[string]interface{}, result interface{}) error {
	q := url.Values{}
	q.Set("query", groq)
	for name, value := range params {
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("sanity client: failed to encode query param %q: %w", name, err)
		}
		q.Set("$"+name, string(encoded))
	}

	reqURL := fmt.Sprintf("%s/v%s/data/query/%s?%s", c.queryHost, c.cfg.APIVersion, c.cfg.Dataset, q.Encode())

	resp, err := c.doRequest(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("sanity client: query request failed: %w", domain.ErrStoreUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("sanity client: query returned status %d: %s: %w", resp.StatusCode, string(bodyBytes), domain.ErrStoreUnavailable)
	}

	var envelope queryEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("sanity client: failed to decode query response: %w", err)
	}
	if result == nil || len(envelope.Result) == 0 {
		return nil
	}
	if err := json.Unmarshal(envelope.Result, result); err != nil {
		return fmt.Errorf("sanity client: failed to unmarshal query result: %w", err)
	}
	return nil
}

// Mutate отправляет транзакцию мутаций и возвращает идентификаторы
// затронутых документов.
func (c *Client) Mutate(ctx context.Context, mutations []interface{}) (*MutateResult, error) {
	body, err := json.Marshal(map[string]interface{}{"mutations": mutations})
	if err != nil {
		return nil, fmt.Errorf("sanity client: failed to encode mutations: %w", err)
	}

	reqURL := fmt.Sprintf("%s/v%s/data/mutate/%s?returnIds=true", c.mutateHost, c.cfg.APIVersion, c.cfg.Dataset)

	resp, err := c.doRequest(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("sanity client: mutate request failed: %w", domain.ErrStoreUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("sanity client: mutate returned status %d: %s: %w", resp.StatusCode, string(bodyBytes), domain.ErrStoreUnavailable)
	}

	var result MutateResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("sanity client: failed to decode mutate response: %w", err)
	}
	return &result, nil
}

// doRequest - внутренний хелпер для выполнения запросов
func (c *Client) doRequest(ctx context.Context, method, reqURL string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Пробрасываем trace_id для сквозной трассировки
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	return c.httpClient.Do(req)
}

// ProjectID и Dataset нужны построителю CDN-ссылок на изображения.
func (c *Client) ProjectID() string { return c.cfg.ProjectID }
func (c *Client) Dataset() string   { return c.cfg.Dataset }
