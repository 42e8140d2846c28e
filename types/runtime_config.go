package types

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// RuntimeConfigVersion is the highest runtime config version this
// package understands.
const RuntimeConfigVersion = "1.1.0"

// RuntimeVersion is the version field of a runtime config. Abbreviated
// forms ("1", "1.1") are completed to full X.Y.Z on decode, and
// versions outside the supported major line are rejected.
type RuntimeVersion string

func (v *RuntimeVersion) UnmarshalYAML(node *yaml.Node) error {
	normalized, err := normalizeRuntimeVersion(node.Value)
	if err != nil {
		return err
	}
	*v = RuntimeVersion(normalized)
	return nil
}

func normalizeRuntimeVersion(s string) (string, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	switch len(parts) {
	case 1:
		parts = append(parts, "0", "0")
	case 2:
		parts = append(parts, "0")
	case 3:
	default:
		return "", fmt.Errorf("runtime config: invalid version %q", s)
	}
	nums := make([]uint64, 3)
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return "", fmt.Errorf("runtime config: invalid version %q", s)
		}
		nums[i] = n
	}
	limit := strings.Split(RuntimeConfigVersion, ".")
	maxMinor, _ := strconv.ParseUint(limit[1], 10, 64)
	maxPatch, _ := strconv.ParseUint(limit[2], 10, 64)
	if nums[0] != 1 || nums[1] > maxMinor || (nums[1] == maxMinor && nums[2] > maxPatch) {
		return "", fmt.Errorf("runtime config: unsupported version %q", s)
	}
	return fmt.Sprintf("%d.%d.%d", nums[0], nums[1], nums[2]), nil
}

// RuntimeEnvVar is one environment variable set inside the VM.
type RuntimeEnvVar struct {
	Key   string `yaml:"key" json:"key"`
	Value string `yaml:"value" json:"value"`
}

// RuntimeMount is one filesystem mounted before the workload starts.
type RuntimeMount struct {
	Source string `yaml:"source" json:"source"`
	Target string `yaml:"target" json:"target"`
	Fstype string `yaml:"fstype,omitempty" json:"fstype,omitempty"`
	Flags  uint64 `yaml:"flags,omitempty" json:"flags,omitempty"`
	Data   string `yaml:"data,omitempty" json:"data,omitempty"`
}

// Virtio9pMount builds the mount used to hand inputs and outputs to a
// VM workload.
func Virtio9pMount(source, target string) RuntimeMount {
	return RuntimeMount{
		Source: source,
		Target: target,
		Fstype: "9p",
		Data:   "trans=virtio,version=9p2000.L",
	}
}

// RuntimeDebugExit describes the ISA debug exit port a VM reports its
// exit code through. SuccessCode must be an odd number greater than 1.
type RuntimeDebugExit struct {
	Arch        string `yaml:"arch" json:"arch"`
	Iobase      uint16 `yaml:"iobase" json:"iobase"`
	Iosize      uint16 `yaml:"iosize" json:"iosize"`
	SuccessCode uint32 `yaml:"success-code" json:"success-code"`
}

// DefaultX86DebugExit is the QEMU isa-debug-exit device at its usual
// port.
func DefaultX86DebugExit() RuntimeDebugExit {
	return RuntimeDebugExit{Arch: "x86", Iobase: 0xf4, Iosize: 0x4, SuccessCode: 0x3}
}

// RuntimeConfig is the VM runtime configuration mounted into a worker
// VM before its main application launches. The VM mounts the listed
// filesystems, applies env and working-dir, loads kernel modules, runs
// the boot commands, follows FollowConfig if set, and finally executes
// Command with Args.
type RuntimeConfig struct {
	Version RuntimeVersion `yaml:"version" json:"version"`

	Command string   `yaml:"command,omitempty" json:"command,omitempty"`
	Args    []string `yaml:"args,omitempty" json:"args,omitempty"`

	Env        []RuntimeEnvVar `yaml:"env,omitempty" json:"env,omitempty"`
	WorkingDir string          `yaml:"working-dir,omitempty" json:"workingDir,omitempty"`
	Mounts     []RuntimeMount  `yaml:"mounts,omitempty" json:"mounts,omitempty"`

	// DefaultMounts controls whether the VM's own defaults (/proc,
	// /sys and friends) are mounted. Absent in YAML means true.
	DefaultMounts bool `yaml:"default-mounts" json:"defaultMounts"`

	KernelModules []string          `yaml:"kernel-modules,omitempty" json:"kernelModules,omitempty"`
	DebugExit     *RuntimeDebugExit `yaml:"debug-exit,omitempty" json:"debugExit,omitempty"`
	Bootcmd       [][]string        `yaml:"bootcmd,omitempty" json:"bootcmd,omitempty"`

	// FollowConfig points at the next config file to process, letting
	// a mounted directory chain in its own configuration.
	FollowConfig string `yaml:"follow-config,omitempty" json:"followConfig,omitempty"`
}

func (c *RuntimeConfig) UnmarshalYAML(node *yaml.Node) error {
	type plain RuntimeConfig
	tmp := plain{DefaultMounts: true}
	if err := node.Decode(&tmp); err != nil {
		return err
	}
	if tmp.Version == "" {
		return fmt.Errorf("runtime config: missing version")
	}
	*c = RuntimeConfig(tmp)
	return nil
}
