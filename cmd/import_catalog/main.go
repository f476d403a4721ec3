// Command import_catalog compara una lista de precios CSV contra el catálogo
// de una empresa e imprime el diff. Con -apply crea y actualiza los productos.
//
// Uso:
//
//	go run ./cmd/import_catalog -company <uuid> -file lista.csv [-apply]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/jhoicas/distribuidora-api/internal/application/catalogimport"
	"github.com/jhoicas/distribuidora-api/internal/application/dto"
	"github.com/jhoicas/distribuidora-api/internal/infrastructure/postgres"
	"github.com/jhoicas/distribuidora-api/pkg/config"
	"github.com/jhoicas/distribuidora-api/pkg/logger"
)

func main() {
	companyID := flag.String("company", "", "ID de la empresa")
	file := flag.String("file", "", "planilla CSV del proveedor")
	apply := flag.Bool("apply", false, "aplicar los cambios (por defecto sólo muestra el diff)")
	flag.Parse()

	if *companyID == "" || *file == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("abrir planilla")
	}
	defer f.Close()

	uc := catalogimport.NewImportUseCase(postgres.NewProductRepository(pool), postgres.NewTxRunner(pool), catalogimport.Config{
		DefaultVATPercent: cfg.Tax.DefaultVATPercent,
	}, log)

	preview, err := uc.PreviewCSV(ctx, *companyID, f)
	if err != nil {
		log.Fatal().Err(err).Msg("vista previa")
	}
	printPreview(preview)

	if !*apply {
		fmt.Println("\nsin cambios aplicados (usar -apply)")
		return
	}
	res, err := uc.Apply(ctx, *companyID, preview.PreviewID)
	if err != nil {
		log.Fatal().Err(err).Msg("aplicar importación")
	}
	fmt.Printf("\nproductos creados: %d, actualizados: %d\n", res.Created, res.Updated)
}

func printPreview(p *dto.CatalogPreviewResponse) {
	fmt.Printf("nuevos: %d  actualizados: %d  sin cambios: %d  inválidos: %d\n\n",
		p.Summary.New, p.Summary.Updated, p.Summary.Unchanged, p.Summary.Invalid)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FILA\tESTADO\tCÓDIGO\tNOMBRE\tCOSTO\tVAR %")
	for _, ch := range p.New {
		fmt.Fprintf(w, "%d\tnuevo\t%s\t%s\t%s\t\n", ch.Line, ch.Code, ch.Name, ch.NewCost.StringFixed(2))
	}
	for _, ch := range p.Updated {
		fmt.Fprintf(w, "%d\tactualiza\t%s\t%s\t%s\t%s\n", ch.Line, ch.Code, ch.Name, ch.NewCost.StringFixed(2), ch.CostChangePercent.StringFixed(2))
	}
	for _, r := range p.Invalid {
		fmt.Fprintf(w, "%d\tinválido\t%s\t%s\t%s\t\n", r.Line, r.Code, r.Name, r.Reason)
	}
	_ = w.Flush()
}
