package spreadsheet_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"

	"github.com/youruser/awayteam/internal/spreadsheet"
)

type WorkbookTestSuite struct {
	suite.Suite
	dir string
}

func TestWorkbookSuite(t *testing.T) {
	suite.Run(t, new(WorkbookTestSuite))
}

func (s *WorkbookTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *WorkbookTestSuite) writeXLSX(sheets map[string][][]any) string {
	f := excelize.NewFile()
	defer f.Close()

	for name, grid := range sheets {
		_, err := f.NewSheet(name)
		s.Require().NoError(err)
		for i, row := range grid {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			s.Require().NoError(err)
			s.Require().NoError(f.SetSheetRow(name, cell, &row))
		}
	}
	s.Require().NoError(f.DeleteSheet("Sheet1"))

	path := filepath.Join(s.dir, "cards.xlsx")
	s.Require().NoError(f.SaveAs(path))
	return path
}

func (s *WorkbookTestSuite) TestXLSXRows() {
	path := s.writeXLSX(map[string][][]any{
		"Elements": {
			{"Name", "Image", "Deck Count"},
			{"Fire", "fire.svg", 3},
			{},
			{" Water ", "water.svg"},
		},
	})

	wb, err := spreadsheet.Open(path)
	s.Require().NoError(err)
	defer wb.Close()

	s.Equal([]string{"Elements"}, wb.Sheets())

	rows, err := wb.Rows("Elements")
	s.Require().NoError(err)
	s.Require().Len(rows, 2)

	s.Equal("Fire", rows[0].Get("Name"))
	s.Equal("3", rows[0].Get("Deck Count"))
	s.Equal("Water", rows[1].Get("Name"))
	s.Equal("", rows[1].Get("Deck Count"))
	s.Equal("", rows[1].Get("No Such Column"))
}

func (s *WorkbookTestSuite) TestXLSXMissingSheet() {
	path := s.writeXLSX(map[string][][]any{"Elements": {{"Name"}}})

	wb, err := spreadsheet.OpenXLSX(path)
	s.Require().NoError(err)
	defer wb.Close()

	_, err = wb.Rows("Roles")
	s.ErrorIs(err, spreadsheet.ErrNoSheet)
}

func (s *WorkbookTestSuite) TestCSVDir() {
	csv := "Name,Description,Element 1,Element 2,Deck Count\nWall,Solid,Fire,,2\n,,,,\n"
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, "Obstacles.csv"), []byte(csv), 0o644))

	wb, err := spreadsheet.Open(s.dir)
	s.Require().NoError(err)
	defer wb.Close()

	s.Equal([]string{"Obstacles"}, wb.Sheets())

	rows, err := wb.Rows("Obstacles")
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal("Wall", rows[0].Get("Name"))
	s.Equal([]string{"Fire"}, rows[0].WithPrefix("Element"))

	_, err = wb.Rows("Rewards")
	s.ErrorIs(err, spreadsheet.ErrNoSheet)
}

func (s *WorkbookTestSuite) TestOpenRejectsUnknownFormat() {
	path := filepath.Join(s.dir, "cards.ods")
	s.Require().NoError(os.WriteFile(path, []byte("x"), 0o644))

	_, err := spreadsheet.Open(path)
	s.Error(err)
}

func (s *WorkbookTestSuite) TestRowWithPrefixKeepsColumnOrder() {
	row := spreadsheet.NewRow(
		[]string{"Name", "Element A", "Deck Count", "Element B", "Element C"},
		[]string{"Combo", "Water", "1", "", "Fire"},
	)
	s.Equal([]string{"Water", "Fire"}, row.WithPrefix("Element"))
	s.False(row.Blank())
	s.True(spreadsheet.NewRow([]string{"Name"}, []string{"  "}).Blank())
}
