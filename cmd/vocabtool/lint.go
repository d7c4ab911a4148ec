package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/parlo-app/parlo-api/internal/catalog"
	"github.com/parlo-app/parlo-api/internal/domain"
)

func lintCmd() *cobra.Command {
	var file string

	c := &cobra.Command{
		Use:   "lint",
		Short: "Validate a catalog YAML file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := catalog.LoadFile(file)
			if err != nil {
				return err
			}

			byCategory := make(map[domain.Category]int)
			for _, card := range cat.Cards() {
				byCategory[card.Category]++
			}

			categories := make([]domain.Category, 0, len(byCategory))
			for category := range byCategory {
				categories = append(categories, category)
			}
			sort.Slice(categories, func(i, j int) bool {
				return categories[i] < categories[j]
			})

			fmt.Printf("%s: %d cards\n", file, cat.Len())
			for _, category := range categories {
				fmt.Printf("  %-12s %d\n", category, byCategory[category])
			}
			fmt.Println("OK")
			return nil
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "Catalog YAML file to validate")
	_ = c.MarkFlagRequired("file")

	return c
}
