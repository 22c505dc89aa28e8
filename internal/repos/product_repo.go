package repos

import (
	"stockroom/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) List() ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `
  SELECT id, name, price, quantity, description, category, sku,
         created_at, COALESCE(updated_at,'') AS updated_at
  FROM products
  ORDER BY created_at DESC, id
`)
	return out, err
}

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
  SELECT id, name, price, quantity, description, category, sku,
         created_at, COALESCE(updated_at,'') AS updated_at
  FROM products
  WHERE id = ?
`, id)
	return p, err
}

func (r *ProductRepo) Insert(p *domain.Product) error {
	_, err := r.db.Exec(`
  INSERT INTO products(id, name, price, quantity, description, category, sku, created_at, updated_at)
  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`, p.ID, p.Name, p.Price, p.Quantity, p.Description, p.Category, p.SKU, p.CreatedAt, p.UpdatedAt)
	return err
}

// Update rewrites the full merged record; the service decides which fields
// change. Returns the number of rows touched (0 means unknown id).
func (r *ProductRepo) Update(p *domain.Product) (int64, error) {
	res, err := r.db.Exec(`
  UPDATE products
  SET name=?, price=?, quantity=?, description=?, category=?, sku=?, updated_at=?
  WHERE id=?
`, p.Name, p.Price, p.Quantity, p.Description, p.Category, p.SKU, p.UpdatedAt, p.ID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *ProductRepo) Delete(id string) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM products WHERE id=?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
