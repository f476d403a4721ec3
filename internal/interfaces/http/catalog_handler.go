package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/distribuidora-api/internal/application/catalogimport"
	"github.com/jhoicas/distribuidora-api/internal/application/dto"
)

// maxImportFileSize tope de la planilla subida (bytes).
const maxImportFileSize = 5 << 20

// CatalogHandler importación de listas de precios de proveedores.
type CatalogHandler struct {
	uc *catalogimport.ImportUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *catalogimport.ImportUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Preview godoc
// @Summary      Vista previa de importación
// @Description  Acepta multipart/form-data con el campo "file" (CSV separado por ; o ,) o un JSON con las filas.
// @Description  Devuelve el diff contra el catálogo y un preview_id para aplicarlo.
// @Tags         catalog
// @Security     Bearer
// @Accept       json,mpfd
// @Produce      json
// @Param        file  formData  file                      false  "Planilla CSV"
// @Param        body  body      dto.CatalogPreviewRequest  false  "Filas en JSON"
// @Success      200   {object}  dto.CatalogPreviewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/catalog/import/preview [post]
func (h *CatalogHandler) Preview(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return missingCompany(c)
	}
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		return h.previewFile(c, companyID)
	}
	var in dto.CatalogPreviewRequest
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.PreviewRows(c.UserContext(), companyID, in.Rows)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogHandler) previewFile(c *fiber.Ctx, companyID string) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo file requerido"})
	}
	if fh.Size > maxImportFileSize {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{Code: "FILE_TOO_LARGE", Message: "la planilla supera 5 MB"})
	}
	f, err := fh.Open()
	if err != nil {
		return writeError(c, err)
	}
	defer f.Close()
	out, err := h.uc.PreviewCSV(c.UserContext(), companyID, f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Apply godoc
// @Summary      Aplicar importación
// @Description  Crea los productos nuevos y actualiza los modificados de la vista previa, en una sola transacción.
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "preview_id"
// @Success      200  {object}  dto.CatalogApplyResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      410  {object}  dto.ErrorResponse
// @Router       /api/catalog/import/{id}/apply [post]
func (h *CatalogHandler) Apply(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return missingCompany(c)
	}
	out, err := h.uc.Apply(c.UserContext(), companyID, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
