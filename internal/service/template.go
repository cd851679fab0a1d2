package service

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/getconnects/leadrelay/internal/models"
)

var (
	placeholderPattern = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)
	htmlTagPattern     = regexp.MustCompile(`<[^>]+>`)
)

// RenderTemplate substitutes {placeholder} tokens in text with lead and client
// attributes. Rendering fails open: if the text references a placeholder the
// substitution map does not carry, the original text comes back unchanged
// rather than a partial render or an error.
func RenderTemplate(text string, lead *models.Lead, client *models.Client) string {
	if text == "" || lead == nil {
		return text
	}

	values := templateValues(lead, client)

	for _, match := range placeholderPattern.FindAllStringSubmatch(text, -1) {
		if _, ok := values[match[1]]; !ok {
			return text
		}
	}

	return placeholderPattern.ReplaceAllStringFunc(text, func(token string) string {
		return values[token[1:len(token)-1]]
	})
}

func templateValues(lead *models.Lead, client *models.Client) map[string]string {
	values := map[string]string{
		"id":              strconv.FormatInt(lead.ID, 10),
		"name":            lead.Name,
		"phone":           lead.Phone,
		"address":         lead.Address,
		"email":           lead.Email,
		"company":         lead.Company,
		"secondary_phone": lead.SecondaryPhone,
		"lead_type":       lead.LeadType,
		"caller_name":     lead.CallerName,
		"caller_number":   lead.CallerNumber,
		"notes":           lead.Notes,
		"number_id":       lead.NumberID,
	}

	if lead.ClientID.Valid {
		values["client_id"] = strconv.FormatInt(lead.ClientID.Int64, 10)
	} else {
		values["client_id"] = ""
	}
	if lead.CampaignID.Valid {
		values["campaign_id"] = lead.CampaignID.String
	} else {
		values["campaign_id"] = ""
	}
	if !lead.CreatedAt.IsZero() {
		values["created_at"] = lead.CreatedAt.Format(time.RFC3339)
	} else {
		values["created_at"] = ""
	}

	first, last := splitName(lead.Name)
	values["first_name"] = first
	values["last_name"] = last

	if client != nil {
		values["client_id"] = strconv.FormatInt(client.ID, 10)
		values["client_company_name"] = client.CompanyName
		values["client_contact_name"] = client.ContactName
		values["client_contact_email"] = client.ContactEmail
		values["client_created_at"] = client.CreatedAt.Format(time.RFC3339)

		values["client_name"] = client.CompanyName
		values["client_email"] = client.ContactEmail
		values["client_phone"] = client.Phone

		if client.ContactName != "" {
			first, last := splitName(client.ContactName)
			values["client_first_name"] = first
			values["client_last_name"] = last
		}
	}

	return values
}

// splitName returns the token before the first whitespace run and the
// remainder; the remainder is empty when the name is a single token.
func splitName(name string) (string, string) {
	name = strings.TrimSpace(name)
	idx := strings.IndexFunc(name, unicode.IsSpace)
	if idx < 0 {
		return name, ""
	}
	return name[:idx], strings.TrimLeftFunc(name[idx:], unicode.IsSpace)
}

// stripHTML removes tags for the plain-text part of an HTML email body.
func stripHTML(html string) string {
	return htmlTagPattern.ReplaceAllString(html, "")
}
