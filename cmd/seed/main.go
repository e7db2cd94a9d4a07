package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"resto-be/internal/config"
	"resto-be/internal/db"
	"resto-be/internal/logger"
	"resto-be/internal/menu"
	"resto-be/internal/money"
	"resto-be/internal/utils"

	"github.com/olekukonko/tablewriter"
)

var sampleMenu = []menu.CreateMenuItemInput{
	{Name: "Truffle Risotto", Description: utils.StrPtr("Creamy arborio rice with black truffle, parmesan and fresh herbs"), Category: menu.CategoryFood, Price: 28.99},
	{Name: "Grilled Salmon", Description: utils.StrPtr("Atlantic salmon with lemon butter sauce and seasonal vegetables"), Category: menu.CategoryFood, Price: 32.99},
	{Name: "Margherita Pizza", Description: utils.StrPtr("Fresh mozzarella, basil and San Marzano tomatoes"), Category: menu.CategoryFood, Price: 18.99},
	{Name: "Caesar Salad", Description: utils.StrPtr("Romaine lettuce with house-made dressing and croutons"), Category: menu.CategoryFood, Price: 14.99},
	{Name: "House Red Wine", Description: utils.StrPtr("Full-bodied red blend"), Category: menu.CategoryDrinks, Price: 12.99},
	{Name: "Fresh Lemonade", Description: utils.StrPtr("House-made lemonade with mint"), Category: menu.CategoryDrinks, Price: 5.99},
	{Name: "Espresso Martini", Description: utils.StrPtr("Vodka, fresh espresso and coffee liqueur"), Category: menu.CategoryDrinks, Price: 14.99},
	{Name: "Date Night Package", Description: utils.StrPtr("Three-course meal for two with a bottle of wine"), Category: menu.CategoryPackages, Price: 89.99},
	{Name: "Family Feast", Description: utils.StrPtr("Complete meal for four with appetizers, mains and dessert"), Category: menu.CategoryPackages, Price: 129.99},
	{Name: "Business Lunch", Description: utils.StrPtr("Two-course lunch with coffee or tea"), Category: menu.CategoryPackages, Price: 24.99},
}

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	svc := menu.NewService(menu.NewRepository(database))

	items, err := seed(context.Background(), svc, sampleMenu)
	if err != nil {
		log.Fatal(err)
	}

	if err := render(os.Stdout, items); err != nil {
		log.Fatal(err)
	}
}

// seed inserts every input and returns the stored items in input order.
func seed(ctx context.Context, svc menu.Service, inputs []menu.CreateMenuItemInput) ([]*menu.MenuItem, error) {
	items := make([]*menu.MenuItem, 0, len(inputs))
	for _, in := range inputs {
		item, err := svc.Create(ctx, in)
		if err != nil {
			return items, fmt.Errorf("seed %q: %w", in.Name, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func render(w io.Writer, items []*menu.MenuItem) error {
	table := tablewriter.NewWriter(w)
	table.Header("ID", "Name", "Category", "Price")

	for _, item := range items {
		row := []string{
			fmt.Sprint(item.ID),
			item.Name,
			string(item.Category),
			money.ToText(item.Price),
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}

	return table.Render()
}
