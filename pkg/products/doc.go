// Package products holds the beer catalogue shown in the product modal and
// wires the modal into a page: a click on a .beer-item[data-beer] element
// fills #product-modal-body and reveals #product-modal; the close buttons
// and a click on the backdrop hide it again.
//
// Texts come from the built-in catalogue and can be overridden per language
// through the translation document under products.{id}.{field}.
package products
