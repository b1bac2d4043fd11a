// Package client is the POS terminal's side of the /api surface: a
// REST client with explicit timeouts, the in-memory catalog session
// store behind the menu screen, and the add/edit form controller.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"pos/entity"
	"pos/services"
)

// DefaultTimeout bounds every request; a server that hangs surfaces as
// a NetworkError with Timeout() == true instead of a stuck screen.
const DefaultTimeout = 10 * time.Second

// NetworkError: the collaborator was unreachable or too slow.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("%s: network error: %v", e.Op, e.Err) }
func (e *NetworkError) Unwrap() error { return e.Err }

func (e *NetworkError) Timeout() bool {
	var nerr net.Error
	return errors.As(e.Err, &nerr) && nerr.Timeout()
}

// RequestFailedError: the collaborator answered with a non-success
// status. Message carries the server's error string when it sent one.
type RequestFailedError struct {
	Status  int
	Message string
}

func (e *RequestFailedError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("request failed (%d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("request failed (%d)", e.Status)
}

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: DefaultTimeout},
	}
}

func (c *Client) SetTimeout(d time.Duration) { c.http.Timeout = d }

func (c *Client) SetToken(token string) { c.token = token }

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	if method != http.MethodGet {
		// One token per submission; the server can use it to spot an
		// accidental duplicate.
		req.Header.Set("X-Idempotency-Key", uuid.NewString())
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: method + " " + path, Err: err}
	}
	return res, nil
}

// doJSON runs a JSON round trip and maps non-2xx onto RequestFailedError.
func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(buf)
		contentType = "application/json"
	}

	res, err := c.do(ctx, method, path, body, contentType)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return failedFrom(res)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}

func failedFrom(res *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	data, _ := io.ReadAll(io.LimitReader(res.Body, 1<<16))
	_ = json.Unmarshal(data, &payload)
	return &RequestFailedError{Status: res.StatusCode, Message: payload.Error}
}

// --- Auth ---

func (c *Client) Login(ctx context.Context, email, password string) error {
	var envelope struct {
		OK   bool `json:"ok"`
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	err := c.doJSON(ctx, http.MethodPost, "/api/login",
		map[string]string{"email": email, "password": password}, &envelope)
	if err != nil {
		return err
	}
	c.token = envelope.Data.Token
	return nil
}

// --- Menu catalog ---

func (c *Client) ListMenuItems(ctx context.Context, category string) ([]entity.MenuItem, error) {
	path := "/api/menu/items"
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}
	var items []entity.MenuItem
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) CreateMenuItem(ctx context.Context, draft services.ItemDraft) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := c.doJSON(ctx, http.MethodPost, "/api/menu/items", draft, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) UpdateMenuItem(ctx context.Context, id uint, draft services.ItemDraft) (*entity.MenuItem, error) {
	var item entity.MenuItem
	path := "/api/menu/items/" + strconv.FormatUint(uint64(id), 10)
	if err := c.doJSON(ctx, http.MethodPut, path, draft, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) DeleteMenuItem(ctx context.Context, id uint) error {
	path := "/api/menu/items/" + strconv.FormatUint(uint64(id), 10)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) ListCategories(ctx context.Context) ([]entity.Category, error) {
	var cats []entity.Category
	if err := c.doJSON(ctx, http.MethodGet, "/api/menu/categories", nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (c *Client) CreateCategory(ctx context.Context, name string) (*entity.Category, error) {
	var cat entity.Category
	if err := c.doJSON(ctx, http.MethodPost, "/api/menu/categories", map[string]string{"name": name}, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id uint, force bool) error {
	path := "/api/menu/categories/" + strconv.FormatUint(uint64(id), 10)
	if force {
		path += "?force=true"
	}
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) ListDepartments(ctx context.Context) ([]entity.Department, error) {
	var deps []entity.Department
	if err := c.doJSON(ctx, http.MethodGet, "/api/menu/departments", nil, &deps); err != nil {
		return nil, err
	}
	return deps, nil
}

func (c *Client) CreateDepartment(ctx context.Context, name string) (*entity.Department, error) {
	var dep entity.Department
	if err := c.doJSON(ctx, http.MethodPost, "/api/menu/departments", map[string]string{"name": name}, &dep); err != nil {
		return nil, err
	}
	return &dep, nil
}

func (c *Client) DeleteDepartment(ctx context.Context, id uint, force bool) error {
	path := "/api/menu/departments/" + strconv.FormatUint(uint64(id), 10)
	if force {
		path += "?force=true"
	}
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

// --- Bulk import/export ---

// DownloadTemplate returns the template file as an opaque blob.
func (c *Client) DownloadTemplate(ctx context.Context) ([]byte, error) {
	return c.download(ctx, "/api/menu/template")
}

// ExportData returns a snapshot of the whole catalog as an opaque blob.
func (c *Client) ExportData(ctx context.Context) ([]byte, error) {
	return c.download(ctx, "/api/menu/export")
}

func (c *Client) download(ctx context.Context, path string) ([]byte, error) {
	res, err := c.do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, failedFrom(res)
	}
	return io.ReadAll(res.Body)
}

// ImportData uploads the file and returns the reconciliation result.
// It does not touch any local state; see Catalog.Import for the
// reload-on-success behavior.
func (c *Client) ImportData(ctx context.Context, filename string, data []byte) (*services.ImportResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := fw.Write(data); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	res, err := c.do(ctx, http.MethodPost, "/api/menu/import", &buf, mw.FormDataContentType())
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, failedFrom(res)
	}

	var result services.ImportResult
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// --- Tables ---

func (c *Client) ListTables(ctx context.Context) ([]entity.Table, error) {
	var tables []entity.Table
	if err := c.doJSON(ctx, http.MethodGet, "/api/tables", nil, &tables); err != nil {
		return nil, err
	}
	return tables, nil
}

func (c *Client) CreateTable(ctx context.Context, table entity.Table) (*entity.Table, error) {
	var created entity.Table
	if err := c.doJSON(ctx, http.MethodPost, "/api/tables", table, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// TablePatch carries partial table updates; nil fields are untouched.
type TablePatch struct {
	Name     *string `json:"name,omitempty"`
	Seats    *int    `json:"seats,omitempty"`
	Category *string `json:"category,omitempty"`
	Status   *string `json:"status,omitempty"`
}

func (c *Client) UpdateTable(ctx context.Context, id uint, patch TablePatch) (*entity.Table, error) {
	var table entity.Table
	path := "/api/tables/" + strconv.FormatUint(uint64(id), 10)
	if err := c.doJSON(ctx, http.MethodPut, path, patch, &table); err != nil {
		return nil, err
	}
	return &table, nil
}

func (c *Client) DeleteTable(ctx context.Context, id uint) error {
	path := "/api/tables/" + strconv.FormatUint(uint64(id), 10)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

// --- Orders ---

// ListTableOrders returns every running order across the floor.
func (c *Client) ListTableOrders(ctx context.Context) ([]entity.TableOrder, error) {
	var orders []entity.TableOrder
	if err := c.doJSON(ctx, http.MethodGet, "/api/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetTableOrder returns nil when the table has no running order.
func (c *Client) GetTableOrder(ctx context.Context, tableID uint) (*entity.TableOrder, error) {
	var order *entity.TableOrder
	path := "/api/orders/table/" + strconv.FormatUint(uint64(tableID), 10)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &order); err != nil {
		return nil, err
	}
	return order, nil
}

func (c *Client) AddItemsToTable(ctx context.Context, tableID uint, tableName string, items []entity.OrderLine) (*entity.TableOrder, error) {
	var order entity.TableOrder
	path := "/api/orders/table/" + strconv.FormatUint(uint64(tableID), 10)
	body := map[string]any{"table_name": tableName, "items": items}
	if err := c.doJSON(ctx, http.MethodPost, path, body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) MarkItemsSent(ctx context.Context, tableID uint) (*entity.TableOrder, error) {
	var order entity.TableOrder
	path := "/api/orders/table/" + strconv.FormatUint(uint64(tableID), 10) + "/sent"
	if err := c.doJSON(ctx, http.MethodPost, path, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) CompleteTableOrder(ctx context.Context, tableID uint) error {
	path := "/api/orders/table/" + strconv.FormatUint(uint64(tableID), 10) + "/complete"
	return c.doJSON(ctx, http.MethodPost, path, nil, nil)
}

// --- Invoices ---

func (c *Client) ListInvoices(ctx context.Context) ([]entity.Invoice, error) {
	var invoices []entity.Invoice
	if err := c.doJSON(ctx, http.MethodGet, "/api/invoices", nil, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

func (c *Client) AddInvoice(ctx context.Context, inv entity.Invoice) (*entity.Invoice, error) {
	var created entity.Invoice
	if err := c.doJSON(ctx, http.MethodPost, "/api/invoices", inv, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// --- Config ---

func (c *Client) GetKotConfig(ctx context.Context) (*entity.KotConfig, error) {
	var cfg entity.KotConfig
	if err := c.doJSON(ctx, http.MethodGet, "/api/config/kot", nil, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Client) UpdateKotConfig(ctx context.Context, cfg entity.KotConfig) (*entity.KotConfig, error) {
	var updated entity.KotConfig
	if err := c.doJSON(ctx, http.MethodPut, "/api/config/kot", cfg, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) GetBillConfig(ctx context.Context) (*entity.BillConfig, error) {
	var cfg entity.BillConfig
	if err := c.doJSON(ctx, http.MethodGet, "/api/config/bill", nil, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Client) UpdateBillConfig(ctx context.Context, cfg entity.BillConfig) (*entity.BillConfig, error) {
	var updated entity.BillConfig
	if err := c.doJSON(ctx, http.MethodPut, "/api/config/bill", cfg, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
