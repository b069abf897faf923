// Copyright 2024 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package database

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const instrumentationName = "internal/pkg/database/tracing"

// GormTracingPlugin 为所有数据库操作生成OpenTelemetry span
type GormTracingPlugin struct {
	tracer trace.Tracer
}

func NewGormTracingPlugin() *GormTracingPlugin {
	return &GormTracingPlugin{
		tracer: otel.GetTracerProvider().Tracer(instrumentationName),
	}
}

func (p *GormTracingPlugin) Name() string {
	return "GormTracingPlugin"
}

func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	kinds := []struct {
		op     string
		before func(name string, fn func(*gorm.DB)) error
		after  func(name string, fn func(*gorm.DB)) error
	}{
		{op: "SELECT", before: db.Callback().Query().Before("gorm:query").Register, after: db.Callback().Query().After("gorm:query").Register},
		{op: "INSERT", before: db.Callback().Create().Before("gorm:create").Register, after: db.Callback().Create().After("gorm:create").Register},
		{op: "UPDATE", before: db.Callback().Update().Before("gorm:update").Register, after: db.Callback().Update().After("gorm:update").Register},
		{op: "DELETE", before: db.Callback().Delete().Before("gorm:delete").Register, after: db.Callback().Delete().After("gorm:delete").Register},
		{op: "RAW", before: db.Callback().Raw().Before("gorm:raw").Register, after: db.Callback().Raw().After("gorm:raw").Register},
	}
	for _, k := range kinds {
		op := k.op
		if err := k.before(fmt.Sprintf("tracing:before_%s", op), p.beforeFunc(op)); err != nil {
			return err
		}
		if err := k.after(fmt.Sprintf("tracing:after_%s", op), p.afterFunc); err != nil {
			return err
		}
	}
	return nil
}

func (p *GormTracingPlugin) beforeFunc(op string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		ctx := extractContext(db)
		spanName := op
		if db.Statement.Table != "" {
			spanName = fmt.Sprintf("%s %s", db.Statement.Table, op)
		}
		ctx, span := p.tracer.Start(ctx, spanName, trace.WithSpanKind(trace.SpanKindClient))
		db.Statement.Context = ctx
		db.Set("tracing:span", span)
	}
}

func (p *GormTracingPlugin) afterFunc(db *gorm.DB) {
	spanValue, exists := db.Get("tracing:span")
	if !exists {
		return
	}
	span, ok := spanValue.(trace.Span)
	if !ok {
		return
	}
	defer span.End()

	attributes := []attribute.KeyValue{
		attribute.String("db.system", "mysql"),
	}
	if db.Statement.Table != "" {
		attributes = append(attributes, attribute.String("db.table", db.Statement.Table))
	}
	if db.Statement.SQL.String() != "" {
		attributes = append(attributes, attribute.String("db.statement", db.Statement.SQL.String()))
	}
	if db.Statement.RowsAffected > 0 {
		attributes = append(attributes, attribute.Int64("db.rows_affected", db.Statement.RowsAffected))
	}
	span.SetAttributes(attributes...)

	// 查不到记录是业务常态, 不算错误
	if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		span.SetStatus(codes.Error, db.Error.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}

func extractContext(db *gorm.DB) context.Context {
	if db.Statement == nil {
		return context.Background()
	}
	return db.Statement.Context
}
