//go:build unix

package signals

import (
	"errors"
	"strconv"
	"syscall"
	"testing"

	"golang.org/x/sys/unix"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want syscall.Signal
	}{
		{strconv.Itoa(int(unix.SIGUSR1)), unix.SIGUSR1},
		{strconv.Itoa(int(unix.SIGUSR2)), unix.SIGUSR2},
		{strconv.Itoa(int(unix.SIGHUP)), unix.SIGHUP},
		{" " + strconv.Itoa(int(unix.SIGUSR1)), unix.SIGUSR1},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		in      string
		wantErr error
	}{
		{"", ErrUnknown},
		{"usr1", ErrUnknown},
		{"0", ErrUnknown},
		{"-10", ErrUnknown},
		{"100000", ErrUnknown},
		{strconv.Itoa(int(unix.SIGKILL)), ErrUncatchable},
		{strconv.Itoa(int(unix.SIGSTOP)), ErrUncatchable},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := Parse(tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.in, err, tt.wantErr)
			}
		})
	}
}

func TestName(t *testing.T) {
	if got := Name(unix.SIGUSR1); got != "SIGUSR1" {
		t.Errorf("Name(SIGUSR1) = %q, want SIGUSR1", got)
	}
	if got := Name(syscall.Signal(100000)); got != "100000" {
		t.Errorf("Name(100000) = %q, want 100000", got)
	}
}

func TestDefault_IsCatchable(t *testing.T) {
	got, err := Parse(strconv.Itoa(int(Default)))
	if err != nil {
		t.Fatalf("default signal %s is not accepted: %v", Name(Default), err)
	}
	if got != Default {
		t.Errorf("Parse(Default) = %v, want %v", got, Default)
	}
}
