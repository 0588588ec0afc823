// cmd/tools/worker-generator/main.go

// worker-generator scaffolds a new Zeebe worker package from its activity
// registry entry, in the shape the assessment workers use: config.go,
// models.go (fields derived from the registry schemas), handler.go with the
// metrics-instrumented Handle/execute split, and a handler_test.go skeleton.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/tejmar999-bot/ai-process-readiness2-automation/pkg/registry"
)

// workerData is the template input derived from one registry activity.
type workerData struct {
	Name         string
	PackageName  string
	TaskType     string
	InputSchema  map[string]interface{}
	OutputSchema map[string]interface{}
	Description  string
	Category     string
	Timeout      string
	FailureCode  string
}

// parseSchema extracts the properties map from a JSON schema object.
func parseSchema(schemaObj interface{}) map[string]interface{} {
	if schemaMap, ok := schemaObj.(map[string]interface{}); ok {
		if props, ok := schemaMap["properties"].(map[string]interface{}); ok {
			return props
		}
	}
	return map[string]interface{}{}
}

// goTypeFromJSONType maps JSON schema types to Go types.
func goTypeFromJSONType(jsonType interface{}) string {
	jt, _ := jsonType.(string)
	switch jt {
	case "string":
		return "string"
	case "integer":
		return "int"
	case "number":
		return "float64"
	case "boolean":
		return "bool"
	case "object":
		return "map[string]interface{}"
	case "array":
		return "[]interface{}"
	default:
		return "interface{}"
	}
}

// structFields renders Go struct fields from schema properties.
func structFields(properties map[string]interface{}) string {
	var fields []string
	for prop, details := range properties {
		propDetails, ok := details.(map[string]interface{})
		if !ok {
			continue
		}
		fields = append(fields, fmt.Sprintf("\t%s %s `json:%q`",
			upperFirst(prop), goTypeFromJSONType(propDetails["type"]), prop))
	}
	return strings.Join(fields, "\n")
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

const configTemplate = `// internal/workers/{{ .Category }}/{{ .TaskType }}/config.go
package {{ .PackageName }}

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}
`

const modelsTemplate = `// internal/workers/{{ .Category }}/{{ .TaskType }}/models.go
package {{ .PackageName }}

// Input are the job variables the {{ .TaskType }} task consumes.
type Input struct {
{{- $props := parseSchema .InputSchema }}
{{- if $props }}
{{ structFields $props }}
{{- end }}
}

// Output is written back to the process on completion.
type Output struct {
{{- $props := parseSchema .OutputSchema }}
{{- if $props }}
{{ structFields $props }}
{{- end }}
}
`

const handlerTemplate = `// internal/workers/{{ .Category }}/{{ .TaskType }}/handler.go
package {{ .PackageName }}

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"

	"github.com/tejmar999-bot/ai-process-readiness2-automation/internal/common/logger"
	"github.com/tejmar999-bot/ai-process-readiness2-automation/internal/common/metrics"
)

const (
	TaskType = "{{ .TaskType }}"
)

type Handler struct {
	config *Config
	logger logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	metrics.WorkerJobsActive.WithLabelValues(TaskType).Inc()
	defer metrics.WorkerJobsActive.WithLabelValues(TaskType).Dec()

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, "PARSE_ERROR").Inc()
		h.failJob(client, job, "PARSE_ERROR", fmt.Sprintf("parse input: %v", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, "{{ .FailureCode }}").Inc()
		h.failJob(client, job, "{{ .FailureCode }}", err.Error())
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	// TODO: implement {{ .Name }}.
	return &Output{}, nil
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	if _, err = cmd.Send(context.Background()); err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) failJob(client worker.JobClient, job entities.Job, errorCode, errorMessage string) {
	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":       job.Key,
		"errorCode":    errorCode,
		"errorMessage": errorMessage,
	})

	_, err := client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(errorCode).
		ErrorMessage(errorMessage).
		Send(context.Background())
	if err != nil {
		h.logger.Error("failed to throw error", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
`

const testTemplate = `// internal/workers/{{ .Category }}/{{ .TaskType }}/handler_test.go
package {{ .PackageName }}

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tejmar999-bot/ai-process-readiness2-automation/internal/common/logger"
)

func newTestHandler(t *testing.T) *Handler {
	return NewHandler(LoadConfig(), logger.NewTestLogger(t))
}

func TestExecute(t *testing.T) {
	h := newTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{})
	require.NoError(t, err)
	require.NotNil(t, output)
	// TODO: assert the {{ .TaskType }} output once execute is implemented.
}
`

const readmeTemplate = `# {{ .Name }}

{{ .Description }}

- Task type: ` + "`{{ .TaskType }}`" + `
- Timeout: {{ .Timeout }}

## Registration

Register in cmd/assessment-manager/main.go alongside the other workers:

` + "```go" + `
if cfg.Workers[{{ .PackageName }}.TaskType].Enabled {
	handler := {{ .PackageName }}.NewHandler(
		&{{ .PackageName }}.Config{
			Timeout: time.Duration(cfg.Workers[{{ .PackageName }}.TaskType].Timeout) * time.Millisecond,
		},
		log,
	)
	startWorker(zeebeClient, {{ .PackageName }}.TaskType, cfg.Workers[{{ .PackageName }}.TaskType], handler.Handle, zapLog)
}
` + "```" + `

And enable it in configs/config.yaml:

` + "```yaml" + `
workers:
  {{ .TaskType }}:
    enabled: true
    max_jobs_active: 5
    timeout: 10000
` + "```" + `
`

func main() {
	activity := flag.String("activity", "", "Activity ID from the registry (e.g., score-assessment)")
	outputDir := flag.String("output", "./internal/workers/", "Output directory for the generated worker")
	registryPath := flag.String("registry", registry.DefaultPath, "Path to the activity registry")
	flag.Parse()

	if *activity == "" {
		fmt.Println("Usage: worker-generator --activity <id> [--output <dir>] [--registry <path>]")
		fmt.Println("\nExample:")
		fmt.Println("  go run cmd/tools/worker-generator/main.go --activity score-assessment")
		os.Exit(1)
	}

	reg, err := registry.Load(*registryPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading registry from %s: %v\n", *registryPath, err)
		os.Exit(1)
	}

	found, ok := reg.Find(*activity)
	if !ok {
		fmt.Fprintf(os.Stderr, "Activity %q not found in %s\n", *activity, *registryPath)
		os.Exit(1)
	}

	data := workerData{
		Name:         found.DisplayName,
		PackageName:  strings.ReplaceAll(found.ID, "-", ""),
		TaskType:     found.TaskType,
		InputSchema:  found.InputSchema,
		OutputSchema: found.OutputSchema,
		Description:  found.Description,
		Category:     found.Category,
		Timeout:      found.Timeout,
		FailureCode:  failureCode(found),
	}

	workerDir := filepath.Join(*outputDir, data.Category, found.ID)
	if err := os.MkdirAll(workerDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating directory: %v\n", err)
		os.Exit(1)
	}

	funcMap := template.FuncMap{
		"parseSchema":  parseSchema,
		"structFields": structFields,
	}

	files := map[string]string{
		"config.go":       configTemplate,
		"models.go":       modelsTemplate,
		"handler.go":      handlerTemplate,
		"handler_test.go": testTemplate,
		"README.md":       readmeTemplate,
	}

	for filename, tmplStr := range files {
		tmpl, err := template.New(filename).Funcs(funcMap).Parse(tmplStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing template %s: %v\n", filename, err)
			os.Exit(1)
		}

		filePath := filepath.Join(workerDir, filename)
		file, err := os.Create(filePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", filePath, err)
			os.Exit(1)
		}
		if err := tmpl.Execute(file, data); err != nil {
			file.Close()
			fmt.Fprintf(os.Stderr, "Error rendering %s: %v\n", filePath, err)
			os.Exit(1)
		}
		file.Close()
		fmt.Printf("Generated %s\n", filePath)
	}

	fmt.Printf("\nWorker scaffold ready at %s\n", workerDir)
	fmt.Println("Next: implement execute in handler.go, register the worker in cmd/assessment-manager, and enable it in configs/config.yaml.")
}

// failureCode picks the execute-failure error code for the generated
// handler: the first non-validation code from the registry entry, or a
// generic fallback.
func failureCode(a *registry.Activity) string {
	for _, code := range a.ErrorCodes {
		if code != "PARSE_ERROR" {
			return code
		}
	}
	return "EXECUTION_FAILED"
}
