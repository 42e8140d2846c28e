package types

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestRuntimeVersionNormalization(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1", "1.0.0"},
		{"1.1", "1.1.0"},
		{"1.0.0", "1.0.0"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := normalizeRuntimeVersion(tc.in)
			if err != nil {
				t.Fatalf("normalize %q failed: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("normalize %q = %q, want %q", tc.in, got, tc.want)
			}
		})
	}

	for _, bad := range []string{"0", "2", "1.2", "1.1.1", "1.0.0.0", "one"} {
		t.Run("rejects "+bad, func(t *testing.T) {
			if _, err := normalizeRuntimeVersion(bad); err == nil {
				t.Errorf("normalize %q succeeded, want error", bad)
			}
		})
	}
}

func TestRuntimeConfigMissingVersion(t *testing.T) {
	var cfg RuntimeConfig
	err := yaml.Unmarshal([]byte("command: echo\n"), &cfg)
	if err == nil || !strings.Contains(err.Error(), "version") {
		t.Fatalf("expected a missing-version error, got %v", err)
	}
}

func TestRuntimeConfigYAML(t *testing.T) {
	source := `
version: 1
working-dir: /
command: prover
args: [--log, info]
env:
  - key: TMPDIR
    value: /tmp
mounts:
  - source: input-1
    target: /input/1
kernel-modules:
  - nvidia
debug-exit:
  arch: x86
  iobase: 0xf4
  iosize: 0x4
  success-code: 0x3
bootcmd:
  - [echo, booting]
follow-config: /my/local/config.yaml
`
	var cfg RuntimeConfig
	if err := yaml.Unmarshal([]byte(source), &cfg); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if cfg.Version != "1.0.0" {
		t.Errorf("expected version 1.0.0, got %q", cfg.Version)
	}
	if cfg.Command != "prover" || len(cfg.Args) != 2 || cfg.Args[0] != "--log" {
		t.Errorf("unexpected command line: %q %v", cfg.Command, cfg.Args)
	}
	if len(cfg.Env) != 1 || cfg.Env[0] != (RuntimeEnvVar{Key: "TMPDIR", Value: "/tmp"}) {
		t.Errorf("unexpected env: %v", cfg.Env)
	}
	if cfg.WorkingDir != "/" {
		t.Errorf("unexpected working dir %q", cfg.WorkingDir)
	}
	if len(cfg.Mounts) != 1 || cfg.Mounts[0].Source != "input-1" || cfg.Mounts[0].Target != "/input/1" {
		t.Errorf("unexpected mounts: %v", cfg.Mounts)
	}
	// default-mounts is absent, so it defaults on.
	if !cfg.DefaultMounts {
		t.Error("expected default mounts to be enabled")
	}
	if cfg.DebugExit == nil || *cfg.DebugExit != DefaultX86DebugExit() {
		t.Errorf("unexpected debug exit: %+v", cfg.DebugExit)
	}
	if len(cfg.Bootcmd) != 1 || len(cfg.Bootcmd[0]) != 2 || cfg.Bootcmd[0][0] != "echo" {
		t.Errorf("unexpected bootcmd: %v", cfg.Bootcmd)
	}
	if cfg.FollowConfig != "/my/local/config.yaml" {
		t.Errorf("unexpected follow config %q", cfg.FollowConfig)
	}
}

func TestVirtio9pMount(t *testing.T) {
	m := Virtio9pMount("input-1", "/input/1")
	if m.Fstype != "9p" || m.Data != "trans=virtio,version=9p2000.L" {
		t.Errorf("unexpected mount: %+v", m)
	}

	var cfg RuntimeConfig
	cfg.Version = RuntimeVersion(RuntimeConfigVersion)
	cfg.Mounts = []RuntimeMount{m}
	out, err := yaml.Marshal(&cfg)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if !strings.Contains(string(out), "fstype: 9p") {
		t.Errorf("expected fstype in output, got:\n%s", out)
	}
}
