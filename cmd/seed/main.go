// seed registra productos en bloque contra la API a partir de un CSV separado por ';'
// con columnas name;category;price;quantity (la fila de encabezado es opcional).
//
// Uso: go run ./cmd/seed [-server http://localhost:8080] [-latin1] productos.csv
// Con -latin1 el archivo se decodifica como ISO-8859-1 (exportaciones de planillas antiguas).
// Cada fila se envía a POST /api/products; las rechazadas se informan con su número de línea.
package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/inventario-simple/internal/application/dto"
)

type row struct {
	line int
	req  dto.RegisterProductRequest
}

func main() {
	server := flag.String("server", "http://localhost:8080", "URL base de la API")
	latin1 := flag.Bool("latin1", false, "Decodificar el CSV como ISO-8859-1")
	flag.Parse()

	csvPath := "productos.csv"
	if flag.NArg() > 0 {
		csvPath = flag.Arg(0)
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	var in io.Reader = f
	if *latin1 {
		in = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	}
	rows, err := parseRows(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	client := newSeedClient(*server)
	ok, rejected := 0, 0
	for _, r := range rows {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := client.register(ctx, r.req)
		cancel()
		if err != nil {
			rejected++
			fmt.Fprintf(os.Stderr, "línea %d: %v\n", r.line, err)
			continue
		}
		ok++
	}

	fmt.Printf("Registrados %d productos, %d rechazados\n", ok, rejected)
	if rejected > 0 {
		os.Exit(2)
	}
}

// parseRows lee el CSV y omite líneas vacías y el encabezado.
func parseRows(in io.Reader) ([]row, error) {
	r := csv.NewReader(in)
	r.Comma = ';'
	r.FieldsPerRecord = 4
	r.TrimLeadingSpace = true

	var rows []row
	first := true
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := r.FieldPos(0)
		if first {
			first = false
			if isHeader(rec) {
				continue
			}
		}
		rows = append(rows, row{
			line: line,
			req: dto.RegisterProductRequest{
				Name:     dto.InputText(rec[0]),
				Category: dto.InputText(rec[1]),
				Price:    dto.InputText(rec[2]),
				Quantity: dto.InputText(rec[3]),
			},
		})
	}
	return rows, nil
}

// headerNames nombres aceptados por columna (en, es, pt).
var headerNames = [4][]string{
	{"name", "nombre", "nome"},
	{"category", "categoria", "categoría"},
	{"price", "precio", "preco", "preço"},
	{"quantity", "cantidad", "quantidade"},
}

// isHeader solo reconoce el encabezado si las cuatro columnas son nombres de campo;
// un producto llamado "nome" sigue siendo un producto.
func isHeader(rec []string) bool {
	for i, names := range headerNames {
		col := strings.ToLower(strings.TrimSpace(rec[i]))
		if !slices.Contains(names, col) {
			return false
		}
	}
	return true
}

// seedClient cliente mínimo de POST /api/products.
type seedClient struct {
	baseURL string
	http    *http.Client
}

func newSeedClient(baseURL string) *seedClient {
	return &seedClient{baseURL: strings.TrimRight(baseURL, "/"), http: &http.Client{}}
}

func (c *seedClient) register(ctx context.Context, in dto.RegisterProductRequest) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("serializar: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/products", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("crear petición: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("enviar: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusCreated {
		return nil
	}
	var apiErr dto.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	if apiErr.Field != "" {
		return fmt.Errorf("%s: %s", apiErr.Field, apiErr.Message)
	}
	return fmt.Errorf("%s: %s", apiErr.Code, apiErr.Message)
}
