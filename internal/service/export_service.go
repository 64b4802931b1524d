package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/noticeboard/internal/dto"
	"github.com/noah-isme/noticeboard/pkg/export"
)

type boardReader interface {
	Timetable(ctx context.Context, q BoardQuery) (*dto.TimetableView, error)
	Results(ctx context.Context, q BoardQuery) (*dto.ResultsView, error)
}

type csvRenderer interface {
	Render(doc export.Document) ([]byte, error)
}

type pdfRenderer interface {
	Render(doc export.Document) ([]byte, error)
}

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ExportService renders public views as downloadable files. It reads through
// the board service, so exports obey the same visibility rules as the pages.
type ExportService struct {
	board  boardReader
	csv    csvRenderer
	pdf    pdfRenderer
	now    func() time.Time
	logger *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(board boardReader, csv csvRenderer, pdf pdfRenderer, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{board: board, csv: csv, pdf: pdf, now: time.Now, logger: logger}
}

// TimetablePDF renders the filtered timetable with one table per weekday.
func (s *ExportService) TimetablePDF(ctx context.Context, q BoardQuery) (*ExportFile, error) {
	view, err := s.board.Timetable(ctx, q)
	if err != nil {
		return nil, err
	}
	doc := export.Document{
		Title:    "Class Timetable",
		Subtitle: describeFilters(view.Filters.Level, departmentName(view, view.Filters.Department)),
		Columns: []export.Column{
			{Header: "Time", Width: 28},
			{Header: "Course", Width: 25},
			{Header: "Title"},
			{Header: "Lecturer", Width: 45},
			{Header: "Venue", Width: 35},
			{Header: "Level", Width: 18},
			{Header: "Semester", Width: 20},
		},
	}
	for _, day := range view.Days {
		section := export.Section{Heading: capitalize(string(day.Day))}
		for _, entry := range day.Entries {
			section.Rows = append(section.Rows, []string{
				entry.StartTime + " - " + entry.EndTime,
				entry.CourseCode,
				entry.CourseTitle,
				entry.Lecturer,
				entry.Venue,
				entry.Level,
				entry.Semester,
			})
		}
		doc.Sections = append(doc.Sections, section)
	}
	body, err := s.pdf.Render(doc)
	if err != nil {
		return nil, internal(err, "failed to render timetable pdf")
	}
	return &ExportFile{
		Filename:    s.filename("timetable", "pdf"),
		ContentType: "application/pdf",
		Body:        body,
	}, nil
}

// ResultsCSV renders the filtered published results.
func (s *ExportService) ResultsCSV(ctx context.Context, q BoardQuery) (*ExportFile, error) {
	view, err := s.board.Results(ctx, q)
	if err != nil {
		return nil, err
	}
	doc := export.Document{
		Columns: []export.Column{
			{Header: "session"}, {Header: "semester"}, {Header: "department"}, {Header: "level"},
			{Header: "course_code"}, {Header: "course_title"}, {Header: "file_url"}, {Header: "description"},
		},
	}
	section := export.Section{}
	for _, result := range view.Results {
		section.Rows = append(section.Rows, []string{
			result.Session,
			string(result.Semester),
			result.DepartmentCode,
			result.Level,
			result.CourseCode,
			result.CourseTitle,
			result.FileURL,
			result.Description,
		})
	}
	doc.Sections = []export.Section{section}
	body, err := s.csv.Render(doc)
	if err != nil {
		return nil, internal(err, "failed to render results csv")
	}
	return &ExportFile{
		Filename:    s.filename("results", "csv"),
		ContentType: "text/csv",
		Body:        body,
	}, nil
}

func (s *ExportService) filename(kind, ext string) string {
	return fmt.Sprintf("%s_%s.%s", kind, s.now().UTC().Format("20060102"), ext)
}

func departmentName(view *dto.TimetableView, id string) string {
	for _, d := range view.Departments {
		if d.ID == id {
			return d.Name
		}
	}
	return ""
}

func describeFilters(level, department string) string {
	var parts []string
	if department != "" {
		parts = append(parts, department)
	}
	if level != "" {
		parts = append(parts, "Level "+level)
	}
	return strings.Join(parts, " | ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
