package httpx

import (
	"context"
	"errors"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/target/ecompanel-ui/internal/domain/model"
	apperrors "github.com/target/ecompanel-ui/internal/errors"
	"github.com/target/ecompanel-ui/internal/http/validation"
	"github.com/target/ecompanel-ui/internal/ports"
)

// maxUploadSize bounds multipart bodies, images included.
const maxUploadSize = 5 << 20

const (
	maxNameLen = 255
	maxMetaLen = 500
	maxSortKey = 100000
)

// selectOption is one entry of a <select>.
type selectOption struct {
	ID    string
	Label string
}

// ---- Categories ----

// CategoriesPage lists every category as a tree, inactive ones included.
// GET /admin/categories.
func (h *UIHandlers) CategoriesPage(w http.ResponseWriter, r *http.Request) {
	cats, err := h.Catalog.ListCategories(r.Context(), model.CategoryListOptions{IncludeInactive: true, IncludeSubCategories: true})
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	data := h.adminData(r, PageMeta{Title: "Categories - eCom Panel", PageTitle: "Categories", CurrentPage: PageCategories}).
		With("Categories", cats).
		With("Count", countCategories(cats)).
		Build()
	h.renderPage(w, r, data)
}

func countCategories(cats []model.Category) int {
	n := len(cats)
	for _, c := range cats {
		n += countCategories(c.SubCategories)
	}
	return n
}

// flattenCategories lists cats depth-first with indented labels, skipping
// excludeID and its descendants so a category cannot become its own parent.
func flattenCategories(cats []model.Category, excludeID string, depth int) []selectOption {
	var out []selectOption
	for _, c := range cats {
		if excludeID != "" && c.ID == excludeID {
			continue
		}
		out = append(out, selectOption{ID: c.ID, Label: strings.Repeat("- ", depth) + c.Name})
		out = append(out, flattenCategories(c.SubCategories, excludeID, depth+1)...)
	}
	return out
}

func (h *UIHandlers) categoryFormPage(r *http.Request, mode FormMode) *TemplateDataBuilder {
	meta := PageMeta{Title: "New category - eCom Panel", PageTitle: "New category", CurrentPage: PageCategoryForm}
	if mode == FormModeEdit {
		meta = PageMeta{Title: "Edit category - eCom Panel", PageTitle: "Edit category", CurrentPage: PageCategoryForm}
	}
	b := h.adminData(r, meta).With("Mode", string(mode)).With("Action", "/admin/categories")
	if mode == FormModeEdit {
		b.With("Action", "/admin/categories/"+r.PathValue("id"))
	}
	cats, err := h.Catalog.ListCategories(r.Context(), model.CategoryListOptions{IncludeInactive: true, IncludeSubCategories: true})
	if err != nil {
		h.logger().WarnContext(r.Context(), "load parent categories failed", "error", err)
	}
	return b.With("Parents", flattenCategories(cats, r.PathValue("id"), 0))
}

// NewCategoryPage renders the empty category form.
// GET /admin/categories/new.
func (h *UIHandlers) NewCategoryPage(w http.ResponseWriter, r *http.Request) {
	data := h.categoryFormPage(r, FormModeCreate).
		With("Form", model.CategoryRequest{IsActive: true}).
		Build()
	h.renderPage(w, r, data)
}

// EditCategoryPage renders the category form filled from the backend.
// GET /admin/categories/{id}/edit.
func (h *UIHandlers) EditCategoryPage(w http.ResponseWriter, r *http.Request) {
	c, err := h.Catalog.GetCategory(r.Context(), r.PathValue("id"))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	data := h.categoryFormPage(r, FormModeEdit).
		With("ID", c.ID).
		With("Form", categoryRequestFrom(c)).
		Build()
	h.renderPage(w, r, data)
}

func categoryRequestFrom(c *model.Category) model.CategoryRequest {
	return model.CategoryRequest{
		Name:             c.Name,
		Description:      c.Description,
		Slug:             c.Slug,
		ImageURL:         c.ImageURL,
		IsActive:         c.IsActive,
		SortOrder:        c.SortOrder,
		MetaTitle:        c.MetaTitle,
		MetaDescription:  c.MetaDescription,
		MetaKeywords:     c.MetaKeywords,
		ParentCategoryID: c.ParentCategoryID,
	}
}

func parseCategoryForm(r *http.Request) (model.CategoryRequest, map[string]string) {
	req := model.CategoryRequest{
		Name:             formString(r, "name"),
		Description:      formString(r, "description"),
		Slug:             formString(r, "slug"),
		ImageURL:         formString(r, "imageUrl"),
		IsActive:         formBool(r, "isActive"),
		SortOrder:        formInt(r, "sortOrder"),
		MetaTitle:        formString(r, "metaTitle"),
		MetaDescription:  formString(r, "metaDescription"),
		MetaKeywords:     formString(r, "metaKeywords"),
		ParentCategoryID: formOptional(r, "parentCategoryId"),
	}
	fv := validation.New().
		Validate("name", req.Name, validation.Required("Name", maxNameLen)).
		Validate("slug", req.Slug, validation.Optional("Slug", maxNameLen)).
		Validate("sortOrder", formString(r, "sortOrder"), validation.IntRange("Sort order", 0, maxSortKey)).
		Validate("metaDescription", req.MetaDescription, validation.Optional("Meta description", maxMetaLen)).
		Validate("parentCategoryId", formString(r, "parentCategoryId"), validation.UUID("Parent category"))
	if id := r.PathValue("id"); id != "" && req.ParentCategoryID != nil && *req.ParentCategoryID == id {
		fv.Add("parentCategoryId", "A category cannot be its own parent.")
	}
	return req, fv.Errors()
}

// SaveCategory creates or updates a category.
// POST /admin/categories and POST /admin/categories/{id}.
func (h *UIHandlers) SaveCategory(mode FormMode) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleForm(h, FormHandlerOpts[model.CategoryRequest]{
			W: w, R: r, Mode: mode,
			Parser: parseCategoryForm,
			Service: formFuncs[model.CategoryRequest]{
				create: func(ctx context.Context, req model.CategoryRequest) error {
					_, err := h.Catalog.CreateCategory(ctx, req)
					return err
				},
				update: func(ctx context.Context, id string, req model.CategoryRequest) error {
					_, err := h.Catalog.UpdateCategory(ctx, id, req)
					return err
				},
			},
			Renderer:       h.renderPage,
			Page:           h.categoryFormPage,
			SuccessURL:     "/admin/categories",
			SuccessMessage: "Category saved",
		})
	}
}

// DeleteCategory removes a category.
// POST /admin/categories/{id}/delete and DELETE /admin/categories/{id}.
func (h *UIHandlers) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	h.handleDelete(w, r, deleteHandlerOpts{
		Delete:       h.Catalog.DeleteCategory,
		RedirectPath: "/admin/categories",
		Success:      "Category deleted",
	})
}

// ---- Brands and manufacturers ----

// brandResource describes a resource edited with the brand form: brands and manufacturers.
type brandResource struct {
	Singular   string
	Plural     string
	Base       string
	ListPage   string
	FormPage   string
	UploadKind ports.UploadKind
}

func (res brandResource) meta(page, title string) PageMeta {
	return PageMeta{Title: title + " - eCom Panel", PageTitle: title, CurrentPage: page}
}

//nolint:gochecknoglobals // static resource descriptors
var (
	brandsResource = brandResource{
		Singular: "Brand", Plural: "Brands", Base: "/admin/brands",
		ListPage: PageBrands, FormPage: PageBrandForm, UploadKind: ports.UploadBrandLogo,
	}
	manufacturersResource = brandResource{
		Singular: "Manufacturer", Plural: "Manufacturers", Base: "/admin/manufacturers",
		ListPage: PageManufacturers, FormPage: PageManufacturerForm, UploadKind: ports.UploadManufacturerLogo,
	}
)

func (h *UIHandlers) brandFormPage(res brandResource) func(*http.Request, FormMode) *TemplateDataBuilder {
	return func(r *http.Request, mode FormMode) *TemplateDataBuilder {
		title := "New " + strings.ToLower(res.Singular)
		action := res.Base
		if mode == FormModeEdit {
			title = "Edit " + strings.ToLower(res.Singular)
			action = res.Base + "/" + r.PathValue("id")
		}
		return h.adminData(r, res.meta(res.FormPage, title)).
			With("Mode", string(mode)).
			With("Action", action).
			With("Resource", res)
	}
}

func brandRequestFrom(b model.Brand) model.BrandRequest {
	return model.BrandRequest{
		Name:            b.Name,
		Description:     b.Description,
		Slug:            b.Slug,
		LogoURL:         b.LogoURL,
		IsPublished:     b.IsPublished,
		ShowOnHomepage:  b.ShowOnHomepage,
		DisplayOrder:    b.DisplayOrder,
		MetaTitle:       b.MetaTitle,
		MetaDescription: b.MetaDescription,
		MetaKeywords:    b.MetaKeywords,
	}
}

func parseBrandForm(r *http.Request) (model.BrandRequest, map[string]string) {
	req := model.BrandRequest{
		Name:            formString(r, "name"),
		Description:     formString(r, "description"),
		Slug:            formString(r, "slug"),
		LogoURL:         formString(r, "logoUrl"),
		IsPublished:     formBool(r, "isPublished"),
		ShowOnHomepage:  formBool(r, "showOnHomepage"),
		DisplayOrder:    formInt(r, "displayOrder"),
		MetaTitle:       formString(r, "metaTitle"),
		MetaDescription: formString(r, "metaDescription"),
		MetaKeywords:    formString(r, "metaKeywords"),
	}
	fv := validation.New().
		Validate("name", req.Name, validation.Required("Name", maxNameLen)).
		Validate("slug", req.Slug, validation.Optional("Slug", maxNameLen)).
		Validate("displayOrder", formString(r, "displayOrder"), validation.IntRange("Display order", 0, maxSortKey)).
		Validate("metaDescription", req.MetaDescription, validation.Optional("Meta description", maxMetaLen))
	return req, fv.Errors()
}

// BrandsPage lists brands, unpublished ones included.
// GET /admin/brands.
func (h *UIHandlers) BrandsPage(w http.ResponseWriter, r *http.Request) {
	brands, err := h.Catalog.ListBrands(r.Context(), true)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	data := h.adminData(r, brandsResource.meta(PageBrands, "Brands")).
		With("Resource", brandsResource).
		With("Items", brands).
		Build()
	h.renderPage(w, r, data)
}

// NewBrandPage renders the empty brand form.
// GET /admin/brands/new.
func (h *UIHandlers) NewBrandPage(w http.ResponseWriter, r *http.Request) {
	data := h.brandFormPage(brandsResource)(r, FormModeCreate).
		With("Form", model.BrandRequest{IsPublished: true}).
		Build()
	h.renderPage(w, r, data)
}

// EditBrandPage renders the brand form filled from the backend.
// GET /admin/brands/{id}/edit.
func (h *UIHandlers) EditBrandPage(w http.ResponseWriter, r *http.Request) {
	b, err := h.Catalog.GetBrand(r.Context(), r.PathValue("id"))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	data := h.brandFormPage(brandsResource)(r, FormModeEdit).
		With("ID", b.ID).
		With("Form", brandRequestFrom(*b)).
		Build()
	h.renderPage(w, r, data)
}

// SaveBrand creates or updates a brand.
// POST /admin/brands and POST /admin/brands/{id}.
func (h *UIHandlers) SaveBrand(mode FormMode) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleForm(h, FormHandlerOpts[model.BrandRequest]{
			W: w, R: r, Mode: mode,
			Parser: parseBrandForm,
			Service: formFuncs[model.BrandRequest]{
				create: func(ctx context.Context, req model.BrandRequest) error {
					_, err := h.Catalog.CreateBrand(ctx, req)
					return err
				},
				update: func(ctx context.Context, id string, req model.BrandRequest) error {
					_, err := h.Catalog.UpdateBrand(ctx, id, req)
					return err
				},
			},
			Renderer:       h.renderPage,
			Page:           h.brandFormPage(brandsResource),
			SuccessURL:     brandsResource.Base,
			SuccessMessage: "Brand saved",
		})
	}
}

// DeleteBrand removes a brand.
// POST /admin/brands/{id}/delete and DELETE /admin/brands/{id}.
func (h *UIHandlers) DeleteBrand(w http.ResponseWriter, r *http.Request) {
	h.handleDelete(w, r, deleteHandlerOpts{
		Delete:       h.Catalog.DeleteBrand,
		RedirectPath: brandsResource.Base,
		Success:      "Brand deleted",
	})
}

// ManufacturersPage lists manufacturers.
// GET /admin/manufacturers.
func (h *UIHandlers) ManufacturersPage(w http.ResponseWriter, r *http.Request) {
	items, err := h.Catalog.ListManufacturers(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	data := h.adminData(r, manufacturersResource.meta(PageManufacturers, "Manufacturers")).
		With("Resource", manufacturersResource).
		With("Items", items).
		Build()
	h.renderPage(w, r, data)
}

// NewManufacturerPage renders the empty manufacturer form.
// GET /admin/manufacturers/new.
func (h *UIHandlers) NewManufacturerPage(w http.ResponseWriter, r *http.Request) {
	data := h.brandFormPage(manufacturersResource)(r, FormModeCreate).
		With("Form", model.BrandRequest{IsPublished: true}).
		Build()
	h.renderPage(w, r, data)
}

// EditManufacturerPage renders the manufacturer form filled from the backend.
// GET /admin/manufacturers/{id}/edit.
func (h *UIHandlers) EditManufacturerPage(w http.ResponseWriter, r *http.Request) {
	m, err := h.Catalog.GetManufacturer(r.Context(), r.PathValue("id"))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	data := h.brandFormPage(manufacturersResource)(r, FormModeEdit).
		With("ID", m.ID).
		With("Form", brandRequestFrom(model.Brand(*m))).
		Build()
	h.renderPage(w, r, data)
}

// SaveManufacturer creates or updates a manufacturer.
// POST /admin/manufacturers and POST /admin/manufacturers/{id}.
func (h *UIHandlers) SaveManufacturer(mode FormMode) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleForm(h, FormHandlerOpts[model.BrandRequest]{
			W: w, R: r, Mode: mode,
			Parser: parseBrandForm,
			Service: formFuncs[model.BrandRequest]{
				create: func(ctx context.Context, req model.BrandRequest) error {
					_, err := h.Catalog.CreateManufacturer(ctx, req)
					return err
				},
				update: func(ctx context.Context, id string, req model.BrandRequest) error {
					_, err := h.Catalog.UpdateManufacturer(ctx, id, req)
					return err
				},
			},
			Renderer:       h.renderPage,
			Page:           h.brandFormPage(manufacturersResource),
			SuccessURL:     manufacturersResource.Base,
			SuccessMessage: "Manufacturer saved",
		})
	}
}

// DeleteManufacturer removes a manufacturer.
// POST /admin/manufacturers/{id}/delete and DELETE /admin/manufacturers/{id}.
func (h *UIHandlers) DeleteManufacturer(w http.ResponseWriter, r *http.Request) {
	h.handleDelete(w, r, deleteHandlerOpts{
		Delete:       h.Catalog.DeleteManufacturer,
		RedirectPath: manufacturersResource.Base,
		Success:      "Manufacturer deleted",
	})
}

// ---- Uploads ----

//nolint:gochecknoglobals // static read-only lookup
var allowedImageExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".webp": true, ".svg": true,
}

// UploadImage forwards a multipart "file" to the backend and returns its public URL.
// POST /admin/categories/upload-image, /admin/brands/upload-logo, /admin/manufacturers/upload-logo.
func (h *UIHandlers) UploadImage(kind ports.UploadKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				WriteAppError(w, apperrors.ValidationField("file", "Image must be "+strconv.Itoa(maxUploadSize>>20)+" MB or smaller"))
				return
			}
			WriteAppError(w, errBadRequest)
			return
		}
		file, hdr, err := r.FormFile("file")
		if err != nil {
			WriteAppError(w, apperrors.ValidationField("file", "Choose an image to upload"))
			return
		}
		defer file.Close()

		if !allowedImageExts[strings.ToLower(path.Ext(hdr.Filename))] {
			WriteAppError(w, apperrors.ValidationField("file", "Only PNG, JPEG, GIF, WebP or SVG images are accepted"))
			return
		}

		url, err := h.Catalog.UploadImage(r.Context(), kind, hdr.Filename, file)
		if err != nil {
			if apperrors.IsUnauthorized(err) {
				clearSessionCookie(w, r, h.Cookies)
			}
			h.logger().WarnContext(r.Context(), "image upload failed", "kind", string(kind), "error", err)
			WriteAppError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, map[string]any{"success": true, "url": url})
	}
}
