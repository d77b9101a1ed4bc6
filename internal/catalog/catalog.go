// Package catalog expose le catalogue produit statique de la boutique.
// Les données vivent en mémoire pour toute la durée du process : aucune
// API de création, modification ou suppression.
package catalog

import "shophub_back_end/internal/models"

// All retourne l'ensemble du catalogue
func All() []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)
	return out
}

// BySlug retrouve un produit par sa clé d'URL
func BySlug(slug string) (models.Product, bool) {
	for _, p := range products {
		if p.Slug == slug {
			return p, true
		}
	}
	return models.Product{}, false
}

// ByID retrouve un produit par son identifiant
func ByID(id string) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Featured retourne les produits mis en avant sur la page d'accueil
func Featured() []models.Product {
	var out []models.Product
	for _, p := range products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// ByCategory filtre le catalogue par catégorie ("all" retourne tout)
func ByCategory(category models.Category) []models.Product {
	if category == models.CategoryAll {
		return All()
	}
	var out []models.Product
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}
