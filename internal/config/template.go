package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// TemplateName 为 --init-config 生成的文件名。
const TemplateName = "maxsum.yaml"

const templateHeader = `# maxsum 配置
# seed: 0 表示按时钟派生；solvers 为空表示全部
# (CubicScan, QuadraticScan, DivideAndConquer, LinearScan)
`

// Marshal 将配置编码为 YAML（带注释头）。
func Marshal(cfg Config) ([]byte, error) {
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	return append([]byte(templateHeader), b...), nil
}

// WriteTemplate 在 dir 下生成 maxsum.yaml；已存在则跳过并返回 (path, false, nil)。
func WriteTemplate(dir string) (string, bool, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", false, err
	}
	path := filepath.Join(dir, TemplateName)
	if _, err := os.Stat(path); err == nil {
		return path, false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", false, err
	}
	b, err := Marshal(Defaults())
	if err != nil {
		return "", false, fmt.Errorf("encode template: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return "", false, err
	}
	return path, true, nil
}
