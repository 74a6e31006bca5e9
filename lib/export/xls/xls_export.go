package xlsexport

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	analyticsapimodels "job-portal-backend/models/api/analytics"
	applicationapimodels "job-portal-backend/models/api/application"
)

type Provider interface {
	ExportApplicantList(jobTitle string, list []applicationapimodels.ApplicantView) (*bytes.Buffer, error)
	ExportJobStats(list []analyticsapimodels.JobStat) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

const defaultSheet = "Sheet1"

var applicantHeaders = []string{"Candidate", "Title", "Contact email", "Job", "Applied on", "Status", "Attachments"}

var jobStatHeaders = []string{"Job", "Views", "Clicks", "Applications", "Click-through rate", "Conversion rate"}

func (i impl) ExportApplicantList(jobTitle string, list []applicationapimodels.ApplicantView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer closeFile(f)
	row, err := writeHeader(f, defaultSheet, 0, applicantHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "xlsx header failed")
	}
	if len(list) != 0 {
		if err = applyDataCellStyle(f, defaultSheet, 1, row+1, len(applicantHeaders), row+len(list)); err != nil {
			return nil, errors.Wrap(err, "xlsx style failed")
		}
	}
	for _, item := range list {
		row++
		attachments := make([]string, 0, len(item.Attachments))
		for _, attachment := range item.Attachments {
			attachments = append(attachments, attachment.Name)
		}
		values := []interface{}{
			item.CandidateName,
			item.CandidateTitle,
			item.ContactEmail,
			jobTitle,
			item.Date.Format("2006-01-02"),
			string(item.Status),
			strings.Join(attachments, ", "),
		}
		if err = writeRow(f, defaultSheet, row, values); err != nil {
			return nil, errors.Wrap(err, "xlsx data failed")
		}
	}
	if err = f.SetSheetName(defaultSheet, "Applicants"); err != nil {
		return nil, err
	}
	return f.WriteToBuffer()
}

func (i impl) ExportJobStats(list []analyticsapimodels.JobStat) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer closeFile(f)
	row, err := writeHeader(f, defaultSheet, 0, jobStatHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "xlsx header failed")
	}
	if len(list) != 0 {
		if err = applyDataCellStyle(f, defaultSheet, 1, row+1, 4, row+len(list)); err != nil {
			return nil, errors.Wrap(err, "xlsx style failed")
		}
		for _, col := range []int{5, 6} {
			if err = applyPercentStyle(f, defaultSheet, col, row+1, row+len(list)); err != nil {
				return nil, errors.Wrap(err, "xlsx style failed")
			}
		}
	}
	for _, item := range list {
		row++
		values := []interface{}{
			item.Title,
			item.Views,
			item.Clicks,
			item.Applications,
			rateValue(item.ClickThroughRate),
			rateValue(item.ConversionRate),
		}
		if err = writeRow(f, defaultSheet, row, values); err != nil {
			return nil, errors.Wrap(err, "xlsx data failed")
		}
	}
	if err = f.SetSheetName(defaultSheet, "Job analytics"); err != nil {
		return nil, err
	}
	return f.WriteToBuffer()
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for idx, value := range values {
		if value == nil {
			continue
		}
		if err := writeColumn(f, sheet, idx+1, row, value); err != nil {
			return err
		}
	}
	return nil
}

// rateValue leaves the cell empty for an undefined rate.
func rateValue(rate *float64) interface{} {
	if rate == nil {
		return nil
	}
	return *rate
}

func closeFile(f *excelize.File) {
	if err := f.Close(); err != nil {
		log.WithError(err).Error("xlsx close failed")
	}
}
