/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package js runs the javascript of script codecs on pooled goja virtual
// machines. The script is compiled once per engine; every pooled VM runs it
// before first use, so the functions it defines stay callable across
// executions.
package js

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dop251/goja"
	"github.com/rulego/codec/api/types"
)

// GojaJsEngine goja js engine
type GojaJsEngine struct {
	vmPool   sync.Pool
	config   types.Config
	jsScript *goja.Program
}

// NewGojaJsEngine creates a new instance of the javascript engine with the
// given script. Compilation errors are reported here, not at execution time.
func NewGojaJsEngine(config types.Config, jsScript string) (*GojaJsEngine, error) {
	program, err := goja.Compile("", jsScript, true)
	if err != nil {
		return nil, err
	}
	jsEngine := &GojaJsEngine{
		config:   config,
		jsScript: program,
	}
	jsEngine.vmPool = sync.Pool{
		New: func() interface{} {
			return jsEngine.NewVm(config)
		},
	}
	return jsEngine, nil
}

// NewVm new a js VM
func (g *GojaJsEngine) NewVm(config types.Config) *goja.Runtime {
	vm := goja.New()
	// run the script so its function definitions exist in the VM
	watchdog := g.startTimeout(vm)
	_, err := vm.RunProgram(g.jsScript)
	g.stopTimeout(watchdog, vm)
	if err != nil && config.Logger != nil {
		config.Logger.Printf("js vm error: %s", err.Error())
	}
	return vm
}

// Execute executes the named function defined by the script, converting the
// arguments into javascript values and exporting the result back to Go.
func (g *GojaJsEngine) Execute(functionName string, argumentList ...interface{}) (out interface{}, err error) {
	defer func() {
		if caught := recover(); caught != nil {
			err = fmt.Errorf("%s", caught)
		}
	}()

	vm := g.vmPool.Get().(*goja.Runtime)
	defer g.vmPool.Put(vm)

	if g.config.ScriptMaxExecutionTime > 0 {
		watchdog := g.startTimeout(vm)
		defer func() {
			g.stopTimeout(watchdog, vm)
		}()
	}

	f, ok := goja.AssertFunction(vm.Get(functionName))
	if !ok {
		return nil, errors.New(functionName + " is not a function")
	}

	var params []goja.Value
	if len(argumentList) > 0 {
		params = make([]goja.Value, len(argumentList))
		for i, v := range argumentList {
			params[i] = vm.ToValue(v)
		}
	}

	res, err := f(goja.Undefined(), params...)
	if err != nil {
		return nil, err
	}
	return res.Export(), nil
}

// vmWatchdog is an armed execution cap on one VM. fired closes after the
// interrupt has landed, so a later ClearInterrupt always runs behind it.
type vmWatchdog struct {
	timer *time.Timer
	fired chan struct{}
}

// startTimeout arms a watchdog that interrupts the VM when the script runs
// past the configured cap. time.AfterFunc avoids a watchdog goroutine per
// execution.
func (g *GojaJsEngine) startTimeout(vm *goja.Runtime) *vmWatchdog {
	if g.config.ScriptMaxExecutionTime <= 0 {
		return nil
	}
	w := &vmWatchdog{fired: make(chan struct{})}
	w.timer = time.AfterFunc(g.config.ScriptMaxExecutionTime, func() {
		vm.Interrupt("execution timeout")
		close(w.fired)
	})
	return w
}

// stopTimeout disarms the watchdog. If the timer already fired, the stop
// waits until the interrupt has landed and then clears it, so the VM never
// carries a stale interrupt into its next use.
// 等中断落地后再清除，可复用的虚拟机不能带着中断回池
func (g *GojaJsEngine) stopTimeout(w *vmWatchdog, vm *goja.Runtime) {
	if w != nil {
		if !w.timer.Stop() {
			<-w.fired
			vm.ClearInterrupt()
		}
	}
}
