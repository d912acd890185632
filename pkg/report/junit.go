package report

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// buildJUnitXML renders one <testcase> per plan.
func buildJUnitXML(r *Report) string {
	totalTime := float64(r.DurationMs) / 1000.0

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(fmt.Sprintf(
		`<testsuites tests="%d" failures="%d" skipped="0" errors="0" time="%.3f">`+"\n",
		r.Summary.Total,
		r.Summary.Failed,
		totalTime,
	))

	timestamp := r.GeneratedAt.Format(time.RFC3339)
	b.WriteString(fmt.Sprintf(
		`  <testsuite name="swipe-geometry" tests="%d" failures="%d" skipped="0" errors="0" time="%.3f" timestamp="%s">`+"\n",
		r.Summary.Total,
		r.Summary.Failed,
		totalTime,
		timestamp,
	))

	for i := range r.Plans {
		b.WriteString(buildTestCase(&r.Plans[i]))
	}

	b.WriteString("  </testsuite>\n")
	b.WriteString("</testsuites>\n")

	return b.String()
}

// buildTestCase builds a single <testcase> element.
func buildTestCase(p *Plan) string {
	name := xmlEscape(p.Name)

	var b strings.Builder
	b.WriteString(fmt.Sprintf(
		`    <testcase name="%s" classname="%s" time="%.3f">`+"\n",
		name, name, float64(p.DurationMs)/1000.0,
	))

	b.WriteString("      <properties>\n")
	b.WriteString(fmt.Sprintf(
		`        <property name="file" value="%s"/>`+"\n",
		xmlEscape(filepath.Base(p.SourceFile)),
	))
	b.WriteString(fmt.Sprintf(
		`        <property name="swipes" value="%d"/>`+"\n",
		len(p.Swipes),
	))
	b.WriteString("      </properties>\n")

	if p.Status == StatusFailed {
		msg, body := "", ""
		if s := p.FirstFailure(); s != nil {
			msg, body = s.Error, s.Description
		}
		b.WriteString(fmt.Sprintf(
			`      <failure message="%s" type="SwipeError">%s</failure>`+"\n",
			xmlEscape(msg),
			xmlEscape(body),
		))
	}

	b.WriteString("    </testcase>\n")
	return b.String()
}

// xmlEscape escapes special XML characters in a string.
func xmlEscape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
