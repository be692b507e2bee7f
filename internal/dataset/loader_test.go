package dataset

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

const sampleCSV = `name,host_name,neighbourhood,neighbourhood_group,room_type,price,beds,latitude,longitude,rating,number_of_reviews,reviews_per_month,availability_365
Sunny studio,Alex,Harlem,Manhattan,Entire home/apt,$150,1,40.81,-73.94,4.7,120,2.5,300
Bright loft,Sam,Williamsburg,Brooklyn,Entire home/apt,220,2,40.71,-73.96,No rating,80,1.1,250
No price here,Kim,Astoria,Queens,Private room,,1,40.77,-73.92,4.2,10,0.4,100
Missing coords,Lee,Chelsea,Manhattan,Private room,95,1,,-74.00,4.0,55,0.9,200
Shared spot,Pat,Bushwick,Brooklyn,Shared room,40,1,40.69,-73.91,3.9,5,0.2,365
`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data_airbnb.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o644); err != nil {
		t.Fatalf("failed to write sample file: %v", err)
	}
	return path
}

func TestLoadDropsIncompleteRows(t *testing.T) {
	table, _, err := NewLoader(writeSample(t)).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if table.RowsRead != 5 {
		t.Errorf("expected 5 rows read, got %d", table.RowsRead)
	}
	// Rows without price or latitude must be dropped.
	if table.RowsKept != 3 {
		t.Errorf("expected 3 rows kept, got %d", table.RowsKept)
	}
	if table.RowsDropped != 2 {
		t.Errorf("expected 2 rows dropped, got %d", table.RowsDropped)
	}
}

func TestLoadCoercesNumericColumns(t *testing.T) {
	table, _, err := NewLoader(writeSample(t)).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	first := table.Listings[0]
	if first.Price != 150 {
		t.Errorf("expected currency-stripped price 150, got %f", first.Price)
	}
	if first.Rating != 4.7 {
		t.Errorf("expected rating 4.7, got %f", first.Rating)
	}

	// Unparseable optional column becomes NaN, the row itself survives.
	second := table.Listings[1]
	if second.Name != "Bright loft" {
		t.Fatalf("unexpected second row: %q", second.Name)
	}
	if !math.IsNaN(second.Rating) {
		t.Errorf("expected NaN rating for %q, got %f", second.Name, second.Rating)
	}
}

func TestLoadBuildsCatalog(t *testing.T) {
	_, catalog, err := NewLoader(writeSample(t)).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(catalog.RoomTypes) != 2 {
		t.Errorf("expected 2 room types from kept rows, got %v", catalog.RoomTypes)
	}
	if len(catalog.NeighbourhoodGroups) != 2 {
		t.Errorf("expected Manhattan and Brooklyn, got %v", catalog.NeighbourhoodGroups)
	}
	if catalog.PriceMin != 40 || catalog.PriceMax != 220 {
		t.Errorf("expected observed price bounds 40..220, got %f..%f", catalog.PriceMin, catalog.PriceMax)
	}
}

func TestLoadMissingRequiredColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	content := "name,price,beds,latitude\nStudio,90,1,40.7\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	_, _, err := NewLoader(path).Load()
	if err == nil {
		t.Fatal("expected error for missing longitude column")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, _, err := NewLoader("/nonexistent/data.csv").Load()
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
