package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/vinylcrate/go-backend/internal/domain"
	"github.com/vinylcrate/go-backend/internal/usecase"
	"github.com/vinylcrate/go-backend/pkg/e"
	"github.com/vinylcrate/go-backend/pkg/logger"
)

type ProductHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewProductHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// ProductSummaryResponse — публичные поля позиции каталога для списка.
type ProductSummaryResponse struct {
	ProductID        int64  `json:"productId"`
	Name             string `json:"name"`
	Price            int64  `json:"price"`
	Image            string `json:"image"`
	ShortDescription string `json:"shortDescription"`
	BandName         string `json:"bandName"`
}

// ProductDetailResponse — полная запись продукта.
type ProductDetailResponse struct {
	ProductID        int64     `json:"productId"`
	Name             string    `json:"name"`
	Price            int64     `json:"price"`
	Image            string    `json:"image"`
	ShortDescription string    `json:"shortDescription"`
	LongDescription  string    `json:"longDescription"`
	BandName         string    `json:"bandName"`
	Genre            string    `json:"genre"`
	Year             int32     `json:"year"`
	CreatedAt        time.Time `json:"createdAt"`
}

// listProducts
//
//	@Summary		Список товаров каталога
//	@Description	Возвращает публичные поля всех товаров; порядок определяет клиент
//	@Tags			products
//	@Produce		json
//	@Success		200	{array}		ProductSummaryResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/products [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := p.catalogUsecase.ListProducts(r.Context())
	if err != nil {
		WriteError(w, p.logger, err)
		return
	}

	result := make([]ProductSummaryResponse, 0, len(products))
	for _, product := range products {
		result = append(result, ProductSummaryResponse{
			ProductID:        product.ID,
			Name:             product.Name,
			Price:            product.Price,
			Image:            product.Image,
			ShortDescription: product.ShortDescription,
			BandName:         product.BandName,
		})
	}

	WriteSuccess(w, http.StatusOK, result)
}

// getProduct
//
//	@Summary		Карточка товара
//	@Description	Возвращает полную запись товара по идентификатору
//	@Tags			products
//	@Produce		json
//	@Param			productId	path		int	true	"Идентификатор товара"
//	@Success		200			{object}	ProductDetailResponse
//	@Failure		404			{object}	ErrorResponse	"Неизвестный productId"
//	@Router			/products/{productId} [get]
func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "productId")

	// Нечисловой идентификатор неотличим от несуществующего: это 404, а не 400
	productID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		WriteError(w, p.logger, e.NotFound("%s is not a valid productId", rawID))
		return
	}

	product, err := p.catalogUsecase.GetProduct(r.Context(), productID)
	if err != nil {
		WriteError(w, p.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductDetailResponse(product))
}

func toProductDetailResponse(product *domain.Product) ProductDetailResponse {
	return ProductDetailResponse{
		ProductID:        product.ID,
		Name:             product.Name,
		Price:            product.Price,
		Image:            product.Image,
		ShortDescription: product.ShortDescription,
		LongDescription:  product.LongDescription,
		BandName:         product.BandName,
		Genre:            product.Genre,
		Year:             product.Year,
		CreatedAt:        product.CreatedAt,
	}
}
