// Package rpc serves typed procedures over HTTP using the tRPC wire shape:
// queries are GET /<prefix><name>?input=<json>, mutations are POST
// /<prefix><name> with a JSON body.
package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"resto-be/internal/logger"
	"resto-be/internal/validation"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type Kind string

const (
	KindQuery    Kind = "query"
	KindMutation Kind = "mutation"
)

const (
	DefaultPrefix  = "/trpc/"
	defaultMaxBody = 1 << 20
)

var tracer = otel.Tracer("resto-be/rpc")

// Guard runs before input decoding. A non-nil error rejects the call.
type Guard func(ctx context.Context) error

type procedure struct {
	name   string
	kind   Kind
	guards []Guard
	call   func(ctx context.Context, raw []byte) (any, error)
}

type ProcedureOption func(*procedure)

func WithGuard(g Guard) ProcedureOption {
	return func(p *procedure) {
		if g != nil {
			p.guards = append(p.guards, g)
		}
	}
}

type Router struct {
	prefix  string
	maxBody int64
	procs   map[string]*procedure
	metrics *routerMetrics
}

type Option func(*Router)

func WithPrefix(prefix string) Option {
	return func(r *Router) { r.prefix = prefix }
}

func WithMaxBodyBytes(n int64) Option {
	return func(r *Router) { r.maxBody = n }
}

func NewRouter(opts ...Option) *Router {
	r := &Router{
		prefix:  DefaultPrefix,
		maxBody: defaultMaxBody,
		procs:   make(map[string]*procedure),
		metrics: newRouterMetrics(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Router) Prefix() string { return r.prefix }

// Procedures returns the registered procedure names, sorted.
func (r *Router) Procedures() []string {
	names := make([]string, 0, len(r.procs))
	for name := range r.procs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Query registers a read procedure served on GET.
func Query[I, O any](r *Router, name string, fn func(context.Context, I) (O, error), opts ...ProcedureOption) {
	register(r, name, KindQuery, fn, opts)
}

// Mutation registers a write procedure served on POST.
func Mutation[I, O any](r *Router, name string, fn func(context.Context, I) (O, error), opts ...ProcedureOption) {
	register(r, name, KindMutation, fn, opts)
}

func register[I, O any](r *Router, name string, kind Kind, fn func(context.Context, I) (O, error), opts []ProcedureOption) {
	if _, dup := r.procs[name]; dup {
		panic(fmt.Sprintf("rpc: procedure %q registered twice", name))
	}

	p := &procedure{
		name: name,
		kind: kind,
		call: func(ctx context.Context, raw []byte) (any, error) {
			in, err := decode[I](raw)
			if err != nil {
				return nil, err
			}
			if err := validation.Check(in); err != nil {
				return nil, err
			}
			return fn(ctx, in)
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	r.procs[name] = p
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	name := strings.TrimPrefix(req.URL.Path, r.prefix)

	p, ok := r.procs[name]
	if !ok {
		writeError(w, name, Errorf(CodeNotFound, "no procedure named %q", name))
		return
	}

	if want := methodFor(p.kind); req.Method != want {
		w.Header().Set("Allow", want)
		writeError(w, name, Errorf(CodeMethodNotSupported, "%s %q must be called with %s", p.kind, name, want))
		return
	}

	started := time.Now()
	ctx, span := tracer.Start(req.Context(), "rpc "+name,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("rpc.system", "trpc"),
			attribute.String("rpc.method", name),
		),
	)
	defer span.End()

	ctx = logger.WithFields(ctx, zap.String("procedure", name))

	result, err := r.serve(ctx, w, req, p)
	if err != nil {
		rerr := toError(err)
		r.logFailure(ctx, rerr)
		if rerr.Code == CodeInternal {
			span.RecordError(err)
			span.SetStatus(codes.Error, rerr.Message)
		}
		span.SetAttributes(attribute.String("rpc.code", string(rerr.Code)))
		r.metrics.record(ctx, name, p.kind, string(rerr.Code), started)
		writeError(w, name, rerr)
		return
	}

	r.metrics.record(ctx, name, p.kind, "OK", started)
	writeResult(w, name, result)
}

func (r *Router) serve(ctx context.Context, w http.ResponseWriter, req *http.Request, p *procedure) (any, error) {
	for _, guard := range p.guards {
		if err := guard(ctx); err != nil {
			return nil, err
		}
	}

	raw, err := r.readInput(w, req, p.kind)
	if err != nil {
		return nil, err
	}

	return p.call(ctx, raw)
}

func (r *Router) readInput(w http.ResponseWriter, req *http.Request, kind Kind) ([]byte, error) {
	if kind == KindQuery {
		return []byte(req.URL.Query().Get("input")), nil
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, req.Body, r.maxBody))
	if err != nil {
		return nil, Wrap(CodeParseError, err, "request body could not be read")
	}
	return body, nil
}

func (r *Router) logFailure(ctx context.Context, rerr *Error) {
	log := logger.FromCtx(ctx).With(zap.String("code", string(rerr.Code)))

	if rerr.Code == CodeInternal {
		log.Error("procedure failed", zap.Error(rerr.Cause))
		return
	}
	log.Info("procedure rejected", zap.String("reason", rerr.Message))
}

func methodFor(kind Kind) string {
	if kind == KindMutation {
		return http.MethodPost
	}
	return http.MethodGet
}

type resultShape struct {
	Result resultData `json:"result"`
}

type resultData struct {
	Data any `json:"data"`
}

func writeResult(w http.ResponseWriter, path string, data any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(resultShape{Result: resultData{Data: data}}); err != nil {
		logger.L().Error("failed to encode procedure result", zap.String("procedure", path), zap.Error(err))
		writeError(w, path, Wrap(CodeInternal, err, "internal server error"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func writeError(w http.ResponseWriter, path string, rerr *Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rerr.Code.HTTPStatus())
	_ = json.NewEncoder(w).Encode(rerr.shape(path))
}
