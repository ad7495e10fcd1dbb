package repository

import (
	"electroworld/internal/core"

	"github.com/pocketbase/dbx"
	"github.com/spf13/cast"

	pbCore "github.com/pocketbase/pocketbase/core"
)

type PBProductRepo struct {
	app pbCore.App
}

func NewProductRepo(app pbCore.App) core.ProductRepository {
	return &PBProductRepo{app: app}
}

// Mapping helper: Record -> Domain Model
func (r *PBProductRepo) toDomain(record *pbCore.Record) *core.Product {
	image := ""
	if name := record.GetString("image"); name != "" {
		image = "/api/files/products/" + record.Id + "/" + name
	}

	return &core.Product{
		ID:       record.Id,
		Name:     record.GetString("name"),
		Category: record.GetString("category"),
		Price:    cast.ToInt(record.Get("price")),
		Image:    image,
		Active:   record.GetBool("active"),
	}
}

func (r *PBProductRepo) GetByID(id string) (*core.Product, error) {
	record, err := r.app.FindRecordById("products", id)
	if err != nil {
		return nil, err
	}
	return r.toDomain(record), nil
}

func (r *PBProductRepo) FindActive(query string) ([]*core.Product, error) {
	filter := "active = true"
	var params dbx.Params
	if query != "" {
		filter += " && (name ~ {:q} || category ~ {:q})"
		params = dbx.Params{"q": query}
	}

	records, err := r.app.FindRecordsByFilter("products", filter, "-created", 0, 0, params)
	if err != nil {
		return nil, err
	}

	var products []*core.Product
	for _, rec := range records {
		products = append(products, r.toDomain(rec))
	}
	return products, nil
}
