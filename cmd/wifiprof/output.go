package wifiprof

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/wifiprof/pkg/dispatcher"
	"github.com/arthur-debert/wifiprof/pkg/errors"
	"github.com/arthur-debert/wifiprof/pkg/render"
	"github.com/arthur-debert/wifiprof/pkg/style"
	"github.com/arthur-debert/wifiprof/pkg/types"
	"gopkg.in/yaml.v3"
)

// outputFile returns w as a file when it is one, for terminal detection
func outputFile(w io.Writer) *os.File {
	f, _ := w.(*os.File)
	return f
}

// writeRecord prints rec in format with every secret masked
func writeRecord(w io.Writer, rec *types.ConfigurationRecord, format style.Format) error {
	switch format {
	case style.FormatJSON:
		data, err := json.MarshalIndent(render.Masked(rec), "", "  ")
		if err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to encode JSON")
		}
		_, err = fmt.Fprintln(w, string(data))
		return err

	case style.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(render.Masked(rec)); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to encode YAML")
		}
		return enc.Close()

	case style.FormatMarkdown:
		doc := style.MarkdownTable(MsgProfileTitle, render.Summary(rec))
		_, err := fmt.Fprint(w, style.Markdown(doc, style.IsRich(outputFile(w))))
		return err

	case style.FormatTerminal:
		title := style.TitleStyle.Render(MsgProfileTitle) + " " +
			style.KindStyle(rec.Classify()).Render(string(rec.Classify()))
		body := style.KeyValues(render.Summary(rec), true)
		_, err := fmt.Fprintln(w, style.BoxStyle.Render(title+"\n\n"+trimNewline(body)))
		return err

	default:
		_, err := fmt.Fprint(w, style.KeyValues(render.Summary(rec), false))
		return err
	}
}

func writeAndroidXML(w io.Writer, rec *types.ConfigurationRecord) error {
	data, err := render.AndroidXML(rec)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func writeQR(w io.Writer, rec *types.ConfigurationRecord) error {
	payload, err := render.WiFiQRPayload(rec)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, payload)
	return err
}

// statusFor maps a dispatcher result to its display status
func statusFor(result dispatcher.Result) style.Status {
	switch {
	case result.State == dispatcher.StateSucceeded && result.Skipped:
		return style.StatusSkipped
	case result.State == dispatcher.StateSucceeded:
		return style.StatusSucceeded
	case result.State == dispatcher.StateRejected:
		return style.StatusRejected
	default:
		return style.StatusFailed
	}
}

// writeResult prints one status line for an install attempt
func writeResult(w io.Writer, result dispatcher.Result, rich bool) {
	identifier := ""
	if result.Request != nil {
		identifier = result.Request.Identifier()
	}

	kind := string(result.Kind)
	if rich {
		kind = style.KindStyle(result.Kind).Render(kind)
	}

	line := style.Badge(statusFor(result), rich) + " " + kind
	if identifier != "" {
		line += " " + identifier
	}
	fmt.Fprintln(w, line)
	if result.Skipped {
		fmt.Fprintln(w, MsgDryRunNotice)
	}
}

// resultError turns a failed attempt into the command's error
func resultError(result dispatcher.Result) error {
	switch result.State {
	case dispatcher.StateSucceeded:
		return nil
	case dispatcher.StateRejected:
		return result.Err
	default:
		return errors.Newf(errors.ErrPlatform, MsgErrPlatform, result.Reason())
	}
}

func trimNewline(s string) string {
	if n := len(s); n > 0 && s[n-1] == '\n' {
		return s[:n-1]
	}
	return s
}
