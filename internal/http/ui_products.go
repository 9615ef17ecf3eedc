package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/target/ecompanel-ui/internal/domain/model"
	"github.com/target/ecompanel-ui/internal/http/validation"
)

const (
	adminProductsPath = "/admin/products"
	maxSKULen         = 100
	maxStock          = 1_000_000_000
)

// AdminProductsPage lists products for the back office.
// GET /admin/products?page=N&q=term.
func (h *UIHandlers) AdminProductsPage(w http.ResponseWriter, r *http.Request) {
	opts := model.ProductListOptions{
		Page:               pageParam(r),
		Search:             r.URL.Query().Get("q"),
		SortDirection:      model.SortDirection(strings.ToLower(r.URL.Query().Get("sort"))),
		IncludeUnpublished: true,
	}.Normalize()
	page, err := h.Catalog.ListProducts(r.Context(), opts)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	data := h.adminData(r, PageMeta{Title: "Products - eCom Panel", PageTitle: "Products", CurrentPage: PageAdminProducts}).
		With("Products", page.Items).
		With("Query", opts.Search).
		WithPagination(adminProductsPath, opts.Page, totalPages(page), page.TotalCount).
		Build()
	h.renderPage(w, r, data)
}

// productFormPage loads the select options for the product wizard. Option
// lists degrade to empty when their source fails.
func (h *UIHandlers) productFormPage(r *http.Request, mode FormMode) *TemplateDataBuilder {
	meta := PageMeta{Title: "Add product - eCom Panel", PageTitle: "Add product", CurrentPage: PageProductForm}
	action := adminProductsPath
	if mode == FormModeEdit {
		meta = PageMeta{Title: "Edit product - eCom Panel", PageTitle: "Edit product", CurrentPage: PageProductForm}
		action = adminProductsPath + "/" + r.PathValue("id")
	}
	ctx := r.Context()
	cats, err := h.Catalog.ListCategories(ctx, model.CategoryListOptions{IncludeInactive: true, IncludeSubCategories: true})
	if err != nil {
		h.logger().WarnContext(ctx, "load category options failed", "error", err)
	}
	brands, err := h.Catalog.ListBrands(ctx, true)
	if err != nil {
		h.logger().WarnContext(ctx, "load brand options failed", "error", err)
	}
	manufacturers, err := h.Catalog.ListManufacturers(ctx)
	if err != nil {
		h.logger().WarnContext(ctx, "load manufacturer options failed", "error", err)
	}
	brandOpts := make([]selectOption, 0, len(brands))
	for _, b := range brands {
		brandOpts = append(brandOpts, selectOption{ID: b.ID, Label: b.Name})
	}
	mfrOpts := make([]selectOption, 0, len(manufacturers))
	for _, m := range manufacturers {
		mfrOpts = append(mfrOpts, selectOption{ID: m.ID, Label: m.Name})
	}
	return h.adminData(r, meta).
		With("Mode", string(mode)).
		With("Action", action).
		With("CategoryOptions", flattenCategories(cats, "", 0)).
		With("BrandOptions", brandOpts).
		With("ManufacturerOptions", mfrOpts)
}

// NewProductPage renders the product creation wizard.
// GET /admin/products/add.
func (h *UIHandlers) NewProductPage(w http.ResponseWriter, r *http.Request) {
	data := h.productFormPage(r, FormModeCreate).
		With("Form", model.ProductRequest{
			RequiresShipping:    true,
			TrackQuantity:       true,
			VisibleIndividually: true,
			DisplayOrder:        1,
		}).
		Build()
	h.renderPage(w, r, data)
}

// EditProductPage renders the wizard filled from the backend.
// GET /admin/products/{id}/edit.
func (h *UIHandlers) EditProductPage(w http.ResponseWriter, r *http.Request) {
	p, err := h.Catalog.GetProduct(r.Context(), r.PathValue("id"))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	data := h.productFormPage(r, FormModeEdit).
		With("ID", p.ID).
		With("Form", productRequestFrom(p)).
		Build()
	h.renderPage(w, r, data)
}

func productRequestFrom(p *model.Product) model.ProductRequest {
	req := model.ProductRequest{
		Name:                p.Name,
		SKU:                 p.SKU,
		ShortDescription:    p.ShortDescription,
		Description:         p.Description,
		Price:               p.Price,
		OldPrice:            p.OldPrice,
		StockQuantity:       p.StockQuantity,
		IsPublished:         p.IsPublished,
		ShowOnHomepage:      p.ShowOnHomepage,
		VisibleIndividually: true,
		RequiresShipping:    true,
		TrackQuantity:       true,
	}
	for dst, v := range map[**string]string{
		&req.CategoryID:     p.CategoryID,
		&req.BrandID:        p.BrandID,
		&req.ManufacturerID: p.ManufacturerID,
	} {
		if v != "" {
			s := v
			*dst = &s
		}
	}
	return req
}

// formIDList gathers IDs from repeated fields and comma-separated values.
func formIDList(r *http.Request, key string) *string {
	var ids []string
	for _, v := range r.Form[key] {
		ids = append(ids, strings.Split(v, ",")...)
	}
	return model.JoinIDs(ids)
}

func parseProductForm(r *http.Request) (model.ProductRequest, map[string]string) {
	req := model.ProductRequest{
		Name:                   formString(r, "name"),
		SKU:                    formString(r, "sku"),
		ShortDescription:       formString(r, "shortDescription"),
		Description:            formString(r, "description"),
		GTIN:                   formOptional(r, "gtin"),
		ManufacturerPartNumber: formOptional(r, "manufacturerPartNumber"),
		DisplayOrder:           formInt(r, "displayOrder"),
		AdminComment:           formOptional(r, "adminComment"),

		Price:          formFloat(r, "price"),
		OldPrice:       formFloatPtr(r, "oldPrice"),
		CompareAtPrice: formFloatPtr(r, "compareAtPrice"),
		CostPrice:      formFloatPtr(r, "costPrice"),

		Weight:           formFloat(r, "weight"),
		Length:           formFloatPtr(r, "length"),
		Width:            formFloatPtr(r, "width"),
		Height:           formFloatPtr(r, "height"),
		RequiresShipping: formBool(r, "requiresShipping"),

		StockQuantity: formInt(r, "stockQuantity"),
		TrackQuantity: formBool(r, "trackQuantity"),

		CategoryID: formOptional(r, "categoryId"),

		AvailableStartDate: formOptional(r, "availableStartDate"),
		AvailableEndDate:   formOptional(r, "availableEndDate"),

		IsPublished:         formBool(r, "isPublished"),
		VisibleIndividually: formBool(r, "visibleIndividually"),
		ShowOnHomepage:      formBool(r, "showOnHomepage"),

		MetaTitle:       formOptional(r, "metaTitle"),
		MetaDescription: formOptional(r, "metaDescription"),
		MetaKeywords:    formOptional(r, "metaKeywords"),

		BrandID:             formOptional(r, "brandId"),
		ManufacturerID:      formOptional(r, "manufacturerId"),
		Tags:                formOptional(r, "tags"),
		RelatedProductIDs:   formIDList(r, "relatedProductIds"),
		CrossSellProductIDs: formIDList(r, "crossSellProductIds"),
	}

	fv := validation.New().
		Validate("name", req.Name, validation.Required("Product name", maxNameLen)).
		Validate("sku", req.SKU, validation.Required("SKU", maxSKULen)).
		Validate("price", formString(r, "price"), validation.NonNegative("Price")).
		Validate("oldPrice", formString(r, "oldPrice"), validation.NonNegative("Old price")).
		Validate("compareAtPrice", formString(r, "compareAtPrice"), validation.NonNegative("Compare at price")).
		Validate("costPrice", formString(r, "costPrice"), validation.NonNegative("Cost price")).
		Validate("weight", formString(r, "weight"), validation.NonNegative("Weight")).
		Validate("length", formString(r, "length"), validation.NonNegative("Length")).
		Validate("width", formString(r, "width"), validation.NonNegative("Width")).
		Validate("height", formString(r, "height"), validation.NonNegative("Height")).
		Validate("stockQuantity", formString(r, "stockQuantity"), validation.IntRange("Stock quantity", 0, maxStock)).
		Validate("displayOrder", formString(r, "displayOrder"), validation.IntRange("Display order", 0, maxSortKey)).
		Validate("metaDescription", formString(r, "metaDescription"), validation.Optional("Meta description", maxMetaLen))
	fv.Add("availableEndDate", validation.DateOrder(formString(r, "availableStartDate"), formString(r, "availableEndDate")))
	return req, fv.Errors()
}

// isDraftSubmit reports whether the wizard's "Save as draft" button was used.
func isDraftSubmit(r *http.Request) bool {
	return strings.EqualFold(formString(r, "action"), "draft")
}

// SaveProduct creates a product (draft or published) or updates one.
// POST /admin/products and POST /admin/products/{id}.
func (h *UIHandlers) SaveProduct(mode FormMode) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		msg := "Product saved"
		if mode == FormModeCreate && isDraftSubmit(r) {
			msg = "Product saved as draft"
		}
		handleForm(h, FormHandlerOpts[model.ProductRequest]{
			W: w, R: r, Mode: mode,
			Parser: parseProductForm,
			Service: formFuncs[model.ProductRequest]{
				create: func(ctx context.Context, req model.ProductRequest) error {
					_, err := h.Catalog.CreateProduct(ctx, req, isDraftSubmit(r))
					return err
				},
				update: func(ctx context.Context, id string, req model.ProductRequest) error {
					_, err := h.Catalog.UpdateProduct(ctx, id, req)
					return err
				},
			},
			Renderer:       h.renderPage,
			Page:           h.productFormPage,
			SuccessURL:     adminProductsPath,
			SuccessMessage: msg,
		})
	}
}

// DeleteProduct removes a product.
// POST /admin/products/{id}/delete and DELETE /admin/products/{id}.
func (h *UIHandlers) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	h.handleDelete(w, r, deleteHandlerOpts{
		Delete:       h.Catalog.DeleteProduct,
		RedirectPath: adminProductsPath,
		Success:      "Product deleted",
	})
}
