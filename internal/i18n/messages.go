package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var translations = map[language.Tag]map[string]string{
	language.French: {
		"Catalog":                              "Catalogue",
		"Home":                                 "Accueil",
		"Products":                             "Produits",
		"Product":                              "Produit",
		"Categories":                           "Catégories",
		"Category":                             "Catégorie",
		"Create product":                       "Créer un produit",
		"Create category":                      "Créer une catégorie",
		"Search":                               "Rechercher",
		"Search products":                      "Rechercher des produits",
		"Name":                                 "Nom",
		"Price":                                "Prix",
		"Company":                              "Entreprise",
		"Image":                                "Image",
		"Submit":                               "Valider",
		"Previous":                             "Précédent",
		"Next":                                 "Suivant",
		"No products found.":                   "Aucun produit trouvé.",
		"No categories yet.":                   "Aucune catégorie pour le moment.",
		"Select a category":                    "Choisissez une catégorie",
		"Page not found":                       "Page introuvable",
		"Something went wrong":                 "Une erreur est survenue",
		"There are %d products in the catalog": "Il y a %d produits dans le catalogue",
		"The product %s has been created":      "Le produit %s a été créé",
		"The category %s has been created":     "La catégorie %s a été créée",
		"Please correct the errors below.":     "Veuillez corriger les erreurs ci-dessous.",
		"validation.required":                  "Ce champ est obligatoire.",
		"validation.numeric":                   "Saisissez un nombre.",
		"validation.max":                       "Valeur trop longue.",
		"validation.invalid":                   "Formulaire invalide.",
	},
	language.English: {
		"validation.required": "This field is required.",
		"validation.numeric":  "Enter a number.",
		"validation.max":      "Value is too long.",
		"validation.invalid":  "The form is invalid.",
	},
}

var messageCatalog = mustBuildCatalog()

func mustBuildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, msgs := range translations {
		for key, msg := range msgs {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(fmt.Sprintf("i18n: register %q for %s: %v", key, tag, err))
			}
		}
	}
	return b
}

// Printer returns a printer for lang backed by the catalog translations.
// Keys without a translation print as themselves.
func Printer(lang string) *message.Printer {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag, message.Catalog(messageCatalog))
}

// T translates key for lang, formatting args into it.
func T(lang, key string, args ...interface{}) string {
	return Printer(lang).Sprintf(key, args...)
}
