package clients_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pr-poehali-dev/office-supply-webshop/clients"
	"github.com/pr-poehali-dev/office-supply-webshop/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessorClient_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req models.ProcessRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "catalog.xlsx", req.Filename)
		prefix := "data:application/vnd.openxmlformats-officedocument.spreadsheetml.sheet;base64,"
		assert.True(t, strings.HasPrefix(req.FileData, prefix))
		raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(req.FileData, prefix))
		assert.NoError(t, err)
		assert.Equal(t, "PK-bytes", string(raw))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"products":[{"id":"item_0","name":"Скотч","category":"Scotch","price":125,"inStock":true}],"categories":["Scotch"],"total_products":1,"message":"Обработано 1 товаров из 1 категорий"}`))
	}))
	defer srv.Close()

	c := clients.NewProcessorClient(srv.URL, time.Second)
	resp, err := c.Process(context.Background(), "catalog.xlsx", "", []byte("PK-bytes"))
	require.NoError(t, err)
	assert.True(t, resp.Success)
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "Скотч", resp.Products[0].Name)
	assert.True(t, resp.Products[0].InStock)
	require.NotNil(t, resp.TotalProducts)
	assert.Equal(t, 1, *resp.TotalProducts)
}

func TestProcessorClient_FailureBodyOnBadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"error":"Ошибка обработки файла: bad zip"}`))
	}))
	defer srv.Close()

	resp, err := clients.NewProcessorClient(srv.URL, time.Second).Process(context.Background(), "a.xls", "", []byte{1})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "Ошибка обработки файла: bad zip", resp.Error)
}

func TestProcessorClient_ErrorWithoutMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusMethodNotAllowed)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	resp, err := clients.NewProcessorClient(srv.URL, time.Second).Process(context.Background(), "a.xlsx", "", nil)
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "processor returned status 405", resp.Error)
}

func TestProcessorClient_TransportErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	_, err := clients.NewProcessorClient(srv.URL, time.Second).Process(context.Background(), "a.xlsx", "", nil)
	assert.ErrorContains(t, err, "status 502")
	srv.Close()

	_, err = clients.NewProcessorClient(srv.URL, time.Second).Process(context.Background(), "a.xlsx", "", nil)
	assert.Error(t, err)
}

func TestDataURL(t *testing.T) {
	assert.Equal(t, "data:text/csv;base64,YWI=", clients.DataURL("text/csv", []byte("ab")))
}
